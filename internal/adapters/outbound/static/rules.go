package static

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// rule is one static accessibility check. IDs, impact levels, and help links
// match the axe-core rules of the same name so audits from the two engines
// aggregate together.
type rule struct {
	id          string
	impact      string
	description string
	check       func(doc *goquery.Document) []string
}

func helpURL(id string) string {
	return "https://dequeuniversity.com/rules/axe/4.9/" + id
}

var builtinRules = []rule{
	{
		id:          "image-alt",
		impact:      "critical",
		description: "Images must have alternate text",
		check: func(doc *goquery.Document) []string {
			var targets []string
			doc.Find("img").Each(func(_ int, s *goquery.Selection) {
				if _, ok := s.Attr("alt"); ok {
					return
				}
				if _, ok := s.Attr("aria-label"); ok {
					return
				}
				if s.AttrOr("role", "") == "presentation" {
					return
				}
				targets = append(targets, selectorFor(s, "img"))
			})
			return targets
		},
	},
	{
		id:          "document-title",
		impact:      "serious",
		description: "Documents must have a title to aid in navigation",
		check: func(doc *goquery.Document) []string {
			if strings.TrimSpace(doc.Find("head title").First().Text()) == "" {
				return []string{"html"}
			}
			return nil
		},
	},
	{
		id:          "html-has-lang",
		impact:      "serious",
		description: "The html element must have a lang attribute",
		check: func(doc *goquery.Document) []string {
			if strings.TrimSpace(doc.Find("html").AttrOr("lang", "")) == "" {
				return []string{"html"}
			}
			return nil
		},
	},
	{
		id:          "link-name",
		impact:      "serious",
		description: "Links must have discernible text",
		check: func(doc *goquery.Document) []string {
			var targets []string
			doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
				if hasAccessibleName(s) {
					return
				}
				// An image child with alt text names the link.
				if alt := s.Find("img").AttrOr("alt", ""); strings.TrimSpace(alt) != "" {
					return
				}
				targets = append(targets, selectorFor(s, "a"))
			})
			return targets
		},
	},
	{
		id:          "button-name",
		impact:      "critical",
		description: "Buttons must have discernible text",
		check: func(doc *goquery.Document) []string {
			var targets []string
			doc.Find("button").Each(func(_ int, s *goquery.Selection) {
				if hasAccessibleName(s) {
					return
				}
				targets = append(targets, selectorFor(s, "button"))
			})
			return targets
		},
	},
	{
		id:          "label",
		impact:      "critical",
		description: "Form elements must have labels",
		check: func(doc *goquery.Document) []string {
			var targets []string
			doc.Find("input, select, textarea").Each(func(_ int, s *goquery.Selection) {
				typ := strings.ToLower(s.AttrOr("type", "text"))
				switch typ {
				case "hidden", "submit", "button", "reset", "image":
					return
				}
				if strings.TrimSpace(s.AttrOr("aria-label", "")) != "" {
					return
				}
				if _, ok := s.Attr("aria-labelledby"); ok {
					return
				}
				if strings.TrimSpace(s.AttrOr("title", "")) != "" {
					return
				}
				if id, ok := s.Attr("id"); ok && id != "" {
					if doc.Find(fmt.Sprintf("label[for=%q]", id)).Length() > 0 {
						return
					}
				}
				if s.ParentsFiltered("label").Length() > 0 {
					return
				}
				targets = append(targets, selectorFor(s, goquery.NodeName(s)))
			})
			return targets
		},
	},
	{
		id:          "frame-title",
		impact:      "serious",
		description: "Frames must have an accessible name",
		check: func(doc *goquery.Document) []string {
			var targets []string
			doc.Find("iframe").Each(func(_ int, s *goquery.Selection) {
				if strings.TrimSpace(s.AttrOr("title", "")) != "" {
					return
				}
				if strings.TrimSpace(s.AttrOr("aria-label", "")) != "" {
					return
				}
				targets = append(targets, selectorFor(s, "iframe"))
			})
			return targets
		},
	},
	{
		id:          "meta-viewport",
		impact:      "critical",
		description: "Zooming and scaling must not be disabled",
		check: func(doc *goquery.Document) []string {
			content := doc.Find(`meta[name="viewport"]`).AttrOr("content", "")
			if content == "" {
				return nil
			}
			if viewportBlocksZoom(content) {
				return []string{`meta[name="viewport"]`}
			}
			return nil
		},
	},
	{
		id:          "empty-heading",
		impact:      "minor",
		description: "Headings should not be empty",
		check: func(doc *goquery.Document) []string {
			var targets []string
			doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
				if hasAccessibleName(s) {
					return
				}
				if alt := s.Find("img").AttrOr("alt", ""); strings.TrimSpace(alt) != "" {
					return
				}
				targets = append(targets, selectorFor(s, goquery.NodeName(s)))
			})
			return targets
		},
	},
}

func hasAccessibleName(s *goquery.Selection) bool {
	if strings.TrimSpace(s.Text()) != "" {
		return true
	}
	if strings.TrimSpace(s.AttrOr("aria-label", "")) != "" {
		return true
	}
	if _, ok := s.Attr("aria-labelledby"); ok {
		return true
	}
	return strings.TrimSpace(s.AttrOr("title", "")) != ""
}

// viewportBlocksZoom flags user-scalable=no and maximum-scale below 2.
func viewportBlocksZoom(content string) bool {
	for _, part := range strings.Split(content, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(strings.ToLower(kv[0]))
		val := strings.TrimSpace(strings.ToLower(kv[1]))
		switch key {
		case "user-scalable":
			if val == "no" || val == "0" {
				return true
			}
		case "maximum-scale":
			if f, err := strconv.ParseFloat(val, 64); err == nil && f < 2 {
				return true
			}
		}
	}
	return false
}

// selectorFor builds a short CSS-ish locator for a flagged element: id when
// present, then classes, then a positional fallback.
func selectorFor(s *goquery.Selection, tag string) string {
	if id, ok := s.Attr("id"); ok && id != "" {
		return "#" + id
	}
	if class := strings.TrimSpace(s.AttrOr("class", "")); class != "" {
		return tag + "." + strings.Join(strings.Fields(class), ".")
	}
	idx := s.Index()
	if idx > 0 {
		return fmt.Sprintf("%s:nth-child(%d)", tag, idx+1)
	}
	return tag
}
