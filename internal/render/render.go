package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/tkarpov/warroom/internal/util"
)

// Options carry per-render presentation hints from the command surface.
type Options struct {
	// Title labels every produced page. Defaults to "Results".
	Title string
}

// Output holds the two parallel renderings of one payload: the player-facing view
// and the raw developer view. Both derive from the same data without re-fetching.
type Output struct {
	Pretty Pages
	Dev    Pages
}

// Render converts an arbitrary decoded payload into bounded display pages. It never
// fails and never returns an empty sequence.
func Render(payload interface{}, p Policy, opts Options) Output {
	title := opts.Title
	if title == "" {
		title = "Results"
	}

	s := classify(payload, p)

	switch s.kind {
	case KindNoData:
		return Output{
			Pretty: Pages{NoDataPage(title)},
			Dev:    Pages{NoDataPage(title + " (raw)")},
		}
	case KindList:
		return Output{
			Pretty: renderListPages(s.list, p, title),
			Dev:    renderDevItemPages(s.list, p, title),
		}
	case KindRanking:
		return Output{
			Pretty: renderRankingPages(s.list, p, title),
			Dev:    renderDevItemPages(s.list, p, title),
		}
	case KindObject:
		return Output{
			Pretty: Pages{renderObjectPretty(s.obj, p, title)},
			Dev:    Pages{renderObjectDev(s.obj, p, title)},
		}
	default:
		page := NewPage(title, projectString(payload))
		dev := NewPage(title+" (raw)", "```json\n"+util.CompactJSON(payload)+"\n```")
		return Output{Pretty: Pages{page}, Dev: Pages{dev}}
	}
}

// renderListPages renders a plain list in chunks, one field per item.
func renderListPages(list []interface{}, p Policy, title string) Pages {
	if len(list) == 0 {
		return Pages{NoDataPage(title)}
	}

	var pages Pages
	for start := 0; start < len(list); start += p.ChunkSize {
		end := start + p.ChunkSize
		if end > len(list) {
			end = len(list)
		}

		page := NewPage(title, "")
		for i, item := range list[start:end] {
			idx := start + i + 1
			if m, ok := item.(map[string]interface{}); ok {
				page.AddField(
					fmt.Sprintf("#%d %s", idx, deriveName(m, p)),
					summarizeMap(m),
					false,
				)
			} else {
				page.AddField(fmt.Sprintf("#%d", idx), projectString(item), false)
			}
		}
		page.Footer = rangeFooter(start, end, len(list))
		pages = append(pages, page)
	}

	return pages
}

// renderRankingPages renders leaderboard rows as "badge #rank — linked-name — value".
func renderRankingPages(rows []interface{}, p Policy, title string) Pages {
	if len(rows) == 0 {
		return Pages{NoDataPage(title)}
	}

	var pages Pages
	for start := 0; start < len(rows); start += p.ChunkSize {
		end := start + p.ChunkSize
		if end > len(rows) {
			end = len(rows)
		}

		lines := make([]string, 0, end-start)
		for i, row := range rows[start:end] {
			lines = append(lines, rankingLine(row, start+i+1, p))
		}

		page := NewPage(title, strings.Join(lines, "\n"))
		page.Footer = rangeFooter(start, end, len(rows))
		pages = append(pages, page)
	}

	return pages
}

func rankingLine(row interface{}, position int, p Policy) string {
	m, ok := row.(map[string]interface{})
	if !ok {
		return fmt.Sprintf("%s **#%d** — %s", p.DefaultBadge, position, Truncate(projectString(row), 80))
	}

	badge := tierBadge(m, p)
	rank := deriveRank(m, position)
	name := linkedName(m, p)
	value := formatNumber(deriveValue(m, p))

	return fmt.Sprintf("%s **#%d** — %s — **%s**", badge, rank, name, value)
}

// renderObjectPretty renders a flat object keeping only scalar-valued keys.
func renderObjectPretty(obj map[string]interface{}, p Policy, title string) Page {
	if len(obj) == 0 {
		return NoDataPage(title)
	}

	keys := sortedKeys(obj)
	page := NewPage(title, "")

	shown := 0
	scalars := 0
	for _, k := range keys {
		if !isScalar(obj[k]) {
			continue
		}
		scalars++
		if shown >= p.PrettyFieldCap {
			continue
		}
		page.AddField(k, projectString(obj[k]), true)
		shown++
	}

	if scalars == 0 {
		// Nothing presentable for players; point at the raw view instead.
		page.Description = "No scalar fields to display; see the raw view."
	}
	if scalars > shown {
		page.Footer = fmt.Sprintf("+%d more", scalars-shown)
	}

	return page
}

// renderObjectDev renders every top-level key, serializing non-scalar values.
func renderObjectDev(obj map[string]interface{}, p Policy, title string) Page {
	title += " (raw)"
	if len(obj) == 0 {
		return NoDataPage(title)
	}

	keys := sortedKeys(obj)
	page := NewPage(title, "")

	for i, k := range keys {
		if i >= p.DevFieldCap {
			page.Footer = fmt.Sprintf("+%d more", len(keys)-p.DevFieldCap)
			break
		}

		v := obj[k]
		if isScalar(v) {
			page.AddField(k, projectString(v), true)
		} else {
			page.AddField(k, "`"+util.CompactJSON(v)+"`", false)
		}
	}

	return page
}

// renderDevItemPages is the raw view of a list or ranking payload: compact JSON per
// element, chunked like the pretty view so page counts line up.
func renderDevItemPages(list []interface{}, p Policy, title string) Pages {
	title += " (raw)"
	if len(list) == 0 {
		return Pages{NoDataPage(title)}
	}

	var pages Pages
	for start := 0; start < len(list); start += p.ChunkSize {
		end := start + p.ChunkSize
		if end > len(list) {
			end = len(list)
		}

		page := NewPage(title, "")
		for i, item := range list[start:end] {
			page.AddField(fmt.Sprintf("#%d", start+i+1), "`"+util.CompactJSON(item)+"`", false)
		}
		page.Footer = rangeFooter(start, end, len(list))
		pages = append(pages, page)
	}

	return pages
}

func rangeFooter(start, end, total int) string {
	return fmt.Sprintf("showing %d–%d of %d", start+1, end, total)
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func isScalar(v interface{}) bool {
	switch v.(type) {
	case string, bool, float64, float32, int, int32, int64, uint, uint32, uint64:
		return true
	default:
		return false
	}
}

// projectString is the generic string projection used wherever a value has no
// better rendering. Total over arbitrary JSON values.
func projectString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return formatNumber(t)
	case float32:
		return formatNumber(float64(t))
	case int:
		return formatNumber(float64(t))
	case int32:
		return formatNumber(float64(t))
	case int64:
		return formatNumber(float64(t))
	default:
		return util.CompactJSON(v)
	}
}

// formatNumber thousands-groups integral values and leaves fractional ones alone.
func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return humanize.Comma(int64(f))
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// summarizeMap produces a compact one-line summary of a map's own scalar fields.
func summarizeMap(m map[string]interface{}) string {
	parts := make([]string, 0, len(m))
	for _, k := range sortedKeys(m) {
		if !isScalar(m[k]) {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", k, projectString(m[k])))
	}

	if len(parts) == 0 {
		return util.CompactJSON(m)
	}

	return strings.Join(parts, ", ")
}

// deriveName picks the display identifier from the policy's key priority list.
func deriveName(m map[string]interface{}, p Policy) string {
	for _, key := range p.NameKeys {
		if v, ok := m[key]; ok && isScalar(v) {
			return projectString(v)
		}
	}
	return "item"
}

// deriveValue picks the numeric value from the policy's key priority list, tolerating
// numbers encoded as strings. Defaults to 0.
func deriveValue(m map[string]interface{}, p Policy) float64 {
	for _, key := range p.ValueKeys {
		v, ok := m[key]
		if !ok {
			continue
		}

		switch t := v.(type) {
		case float64:
			return t
		case float32:
			return float64(t)
		case int:
			return float64(t)
		case int32:
			return float64(t)
		case int64:
			return float64(t)
		case string:
			if f, err := strconv.ParseFloat(t, 64); err == nil {
				return f
			}
		}
	}
	return 0
}

// deriveRank prefers an explicit rank carried by the row over its list position.
func deriveRank(m map[string]interface{}, fallback int) int {
	for _, key := range []string{"rank", "position"} {
		switch t := m[key].(type) {
		case float64:
			return int(t)
		case int:
			return t
		}
	}
	return fallback
}

// tierBadge matches the row's tier field case-insensitively by prefix against the
// policy vocabulary. Unknown or missing tiers get the default badge.
func tierBadge(m map[string]interface{}, p Policy) string {
	tier, _ := m["tier"].(string)
	lt := strings.ToLower(strings.TrimSpace(tier))
	if lt != "" {
		for _, t := range p.Tiers {
			if strings.HasPrefix(lt, t.Prefix) {
				return t.Badge
			}
		}
	}
	return p.DefaultBadge
}

// linkedName renders the row name as a profile link. The link target is the row's
// id when present, else the name itself.
func linkedName(m map[string]interface{}, p Policy) string {
	name := Truncate(deriveName(m, p), 80)
	if p.ProfileUrlTemplate == "" {
		return "**" + name + "**"
	}

	target := interface{}(name)
	if id, ok := m["id"]; ok && isScalar(id) {
		target = id
	}

	return fmt.Sprintf("[%s](%s)", name, fmt.Sprintf(p.ProfileUrlTemplate, target))
}
