package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cardview/cmd/cardview/ui"
	"cardview/internal/card"
	"cardview/internal/export"
	"cardview/internal/pipeline"
)

var (
	queryFilters  []string
	querySearch   string
	querySort     []string
	queryPage     int
	queryPageSize int
	queryOutput   string
	queryAll      bool
)

// queryCmd runs the pipeline once and prints the result.
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run the processing pipeline once and print the result",
	Long: `Applies filters, search, sort, and pagination to the dataset and
prints one page (or, with --all, the whole processed set).

Filter expressions name a filter id and a value:
  --filter status=active          equality / selection
  --filter tags=go,cli            multi-select (comma separated)
  --filter price=100..200         numeric or date range
  --filter price>=100             numeric comparison
  --filter name~ann               text contains

Sort criteria are field:direction, applied in order:
  --sort price:asc --sort name:desc`,
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringArrayVarP(&queryFilters, "filter", "f", nil, "filter expression (repeatable)")
	queryCmd.Flags().StringVarP(&querySearch, "search", "s", "", "search query")
	queryCmd.Flags().StringArrayVar(&querySort, "sort", nil, "sort criterion field:asc|desc (repeatable)")
	queryCmd.Flags().IntVar(&queryPage, "page", 1, "page number")
	queryCmd.Flags().IntVar(&queryPageSize, "page-size", 0, "page size (default from config)")
	queryCmd.Flags().StringVarP(&queryOutput, "output", "o", "table", "output format: table, json, csv")
	queryCmd.Flags().BoolVar(&queryAll, "all", false, "emit the full processed set, not one page")
}

func runQuery(cmd *cobra.Command, args []string) error {
	cfg, records, err := loadView()
	if err != nil {
		return err
	}

	defs := cfg.FilterDefinitions()
	state := pipeline.NewViewState(cfg.Search.Fields, cfg.PageSize)
	state.Search = cfg.SearchConfig()
	state.Sort = cfg.DefaultSort
	pipe := pipeline.New(defs, records, pipeline.WithLogger(logger), pipeline.WithState(state))

	for _, expr := range queryFilters {
		id, value, err := parseFilterExpr(defs, expr)
		if err != nil {
			return err
		}
		pipe.UpdateFilter(id, value)
	}
	if querySearch != "" {
		pipe.SetSearchQuery(querySearch)
	}
	if len(querySort) > 0 {
		criteria, err := parseSortArgs(querySort)
		if err != nil {
			return err
		}
		pipe.UpdateSort(criteria)
	}
	if queryPageSize > 0 {
		pipe.SetPageSize(queryPageSize)
	}
	res := pipe.GoToPage(queryPage)

	items := res.PageItems
	if queryAll {
		items = pipe.Processed()
	}

	switch queryOutput {
	case "json":
		return export.WriteJSON(os.Stdout, items)
	case "csv":
		return export.WriteCSV(os.Stdout, cfg.Fields, items)
	case "table":
		fmt.Print(ui.RenderTable(cfg.Fields, items))
		fmt.Printf("%d of %d records (page %d/%d, %d total)\n",
			len(items), res.FilteredCount, res.Page.CurrentPage,
			res.Page.TotalPages(), res.OriginalCount)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", queryOutput)
	}
}

// filterOps in longest-first order so ">=" wins over ">".
var filterOps = []string{"!=", ">=", "<=", "=", ">", "<", "~"}

// parseFilterExpr turns an id<op>value expression into the FilterValue
// shape the filter's kind expects.
func parseFilterExpr(defs []card.FilterDefinition, expr string) (string, card.FilterValue, error) {
	var id, op, value string
	for _, candidate := range filterOps {
		if i := strings.Index(expr, candidate); i > 0 {
			id, op, value = expr[:i], candidate, expr[i+len(candidate):]
			break
		}
	}
	if id == "" {
		return "", card.FilterValue{}, fmt.Errorf("bad filter expression %q (want id=value)", expr)
	}

	var def *card.FilterDefinition
	for i := range defs {
		if defs[i].ID == id {
			def = &defs[i]
			break
		}
	}
	if def == nil {
		return "", card.FilterValue{}, fmt.Errorf("no filter with id %q", id)
	}

	switch def.Kind {
	case card.FilterCheckbox:
		return id, card.FilterValue{Values: strings.Split(value, ",")}, nil

	case card.FilterDropdown:
		if def.Multiple {
			return id, card.FilterValue{Values: strings.Split(value, ",")}, nil
		}
		return id, card.FilterValue{Raw: value}, nil

	case card.FilterText:
		return id, card.FilterValue{Raw: value}, nil

	case card.FilterConditional:
		cond := map[string]card.Condition{
			"=": card.CondEquals, "!=": card.CondNotEquals, "~": card.CondContains,
		}[op]
		if cond == "" {
			return "", card.FilterValue{}, fmt.Errorf("filter %q: operator %q not valid for text", id, op)
		}
		return id, card.FilterValue{Condition: cond, Raw: value}, nil

	case card.FilterNumber:
		if low, high, ok := strings.Cut(value, ".."); ok {
			return id, card.FilterValue{Condition: card.CondBetween, Values: []string{low, high}}, nil
		}
		cond := map[string]card.Condition{
			"=": card.CondEquals, "!=": card.CondNotEquals,
			">": card.CondGreaterThan, ">=": card.CondGreaterOrEqual,
			"<": card.CondLessThan, "<=": card.CondLessOrEqual,
		}[op]
		if cond == "" {
			return "", card.FilterValue{}, fmt.Errorf("filter %q: operator %q not valid for numbers", id, op)
		}
		return id, card.FilterValue{Condition: cond, Raw: value}, nil

	case card.FilterDate:
		if start, end, ok := strings.Cut(value, ".."); ok {
			return id, card.FilterValue{Start: start, End: end}, nil
		}
		return id, card.FilterValue{Raw: value}, nil

	default:
		// The pipeline would ignore this filter anyway; reject it here
		// where the user can still fix the expression.
		return "", card.FilterValue{}, fmt.Errorf("filter %q has unknown kind %q", id, def.Kind)
	}
}

func parseSortArgs(args []string) ([]card.SortCriterion, error) {
	criteria := make([]card.SortCriterion, 0, len(args))
	for _, arg := range args {
		field, dir, _ := strings.Cut(arg, ":")
		if field == "" {
			return nil, fmt.Errorf("bad sort criterion %q", arg)
		}
		switch dir {
		case "", "asc":
			criteria = append(criteria, card.SortCriterion{Field: field, Direction: card.Ascending})
		case "desc":
			criteria = append(criteria, card.SortCriterion{Field: field, Direction: card.Descending})
		default:
			return nil, fmt.Errorf("bad sort direction %q in %q", dir, arg)
		}
	}
	return criteria, nil
}
