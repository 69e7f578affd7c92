package view

import (
	"sort"
	"strconv"
	"strings"

	"workclock-backend/internal/presence"
	"workclock-backend/internal/settings"
)

// Ellipsis marks a gap in the compact page-number list.
const Ellipsis = "…"

// Options is the caller-held view state applied to a projected row set.
type Options struct {
	SortBy     settings.SortCriteria
	Direction  settings.SortDirection
	Page       int
	PageSize   int
	OnlineOnly bool
}

// Page is one window of the filtered, sorted row set.
type Page struct {
	Rows        []presence.PersonView `json:"rows"`
	Total       int                   `json:"total"`
	Page        int                   `json:"page"`
	PageSize    int                   `json:"page_size"`
	TotalPages  int                   `json:"total_pages"`
	PageNumbers []string              `json:"page_numbers"`
}

// FilterOnline keeps rows whose status is working or lastHour.
func FilterOnline(rows []presence.PersonView) []presence.PersonView {
	kept := make([]presence.PersonView, 0, len(rows))
	for _, r := range rows {
		if r.Status.Online() {
			kept = append(kept, r)
		}
	}
	return kept
}

// Sort orders rows in place. The sort is stable: rows with equal keys keep
// their input order. The timezone criteria keeps empty effective zones last
// in both directions.
func Sort(rows []presence.PersonView, by settings.SortCriteria, dir settings.SortDirection) {
	desc := dir == settings.SortDesc
	sort.SliceStable(rows, func(i, j int) bool {
		if by == settings.SortByTimezone {
			// Empty effective zones sort last regardless of direction.
			ae, be := rows[i].EffectiveTimezone == "", rows[j].EffectiveTimezone == ""
			if ae != be {
				return be
			}
		}
		c := compare(rows[i], rows[j], by)
		if c == 0 {
			return false
		}
		if desc {
			return c > 0
		}
		return c < 0
	})
}

func compare(a, b presence.PersonView, by settings.SortCriteria) int {
	switch by {
	case settings.SortByStatus:
		return a.Status.Rank() - b.Status.Rank()
	case settings.SortByTimezone:
		return strings.Compare(strings.ToLower(a.EffectiveTimezone), strings.ToLower(b.EffectiveTimezone))
	default:
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	}
}

// TotalPages returns the page count for a total, never less than 1.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage clamps a requested page to [1, TotalPages(total, pageSize)].
// Applied whenever the filtered/sorted total changes size so a stale page
// index never yields an empty window.
func ClampPage(page, total, pageSize int) int {
	if page < 1 {
		return 1
	}
	if max := TotalPages(total, pageSize); page > max {
		return max
	}
	return page
}

// Paginate returns the slice [(page-1)*pageSize, page*pageSize) of rows.
func Paginate(rows []presence.PersonView, page, pageSize int) []presence.PersonView {
	if pageSize < 1 {
		pageSize = 1
	}
	start := (page - 1) * pageSize
	if start < 0 {
		start = 0
	}
	if start >= len(rows) {
		return []presence.PersonView{}
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// PageNumbers builds the compact page list for the pager. Seven or fewer
// pages list in full; otherwise the first and last page frame a window of
// page±2, with an ellipsis wherever the window does not abut an endpoint.
func PageNumbers(totalPages, page int) []string {
	if totalPages <= 7 {
		nums := make([]string, totalPages)
		for i := range nums {
			nums[i] = strconv.Itoa(i + 1)
		}
		return nums
	}

	lo := page - 2
	if lo < 2 {
		lo = 2
	}
	hi := page + 2
	if hi > totalPages-1 {
		hi = totalPages - 1
	}

	nums := []string{"1"}
	if lo > 2 {
		nums = append(nums, Ellipsis)
	}
	for i := lo; i <= hi; i++ {
		nums = append(nums, strconv.Itoa(i))
	}
	if hi < totalPages-1 {
		nums = append(nums, Ellipsis)
	}
	return append(nums, strconv.Itoa(totalPages))
}

// Apply runs the full filter → sort → clamp → slice pipeline.
func Apply(rows []presence.PersonView, opts Options) Page {
	if opts.OnlineOnly {
		rows = FilterOnline(rows)
	} else {
		rows = append([]presence.PersonView(nil), rows...)
	}
	Sort(rows, opts.SortBy, opts.Direction)

	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = settings.DefaultPageSize
	}
	total := len(rows)
	totalPages := TotalPages(total, pageSize)
	page := ClampPage(opts.Page, total, pageSize)

	return Page{
		Rows:        Paginate(rows, page, pageSize),
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		PageNumbers: PageNumbers(totalPages, page),
	}
}
