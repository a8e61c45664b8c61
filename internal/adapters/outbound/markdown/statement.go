// Package markdown renders accessibility statements as Markdown documents
// suitable for publishing on the audited site.
package markdown

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/a11yscan/a11yscan/internal/domain/report"
)

const statementTemplate = `# Accessibility Statement for {{.OrgName}}

{{.OrgName}} is committed to ensuring digital accessibility for people with
disabilities. We are continually improving the user experience for everyone
and applying the relevant accessibility standards.

## Conformance status

The [Web Content Accessibility Guidelines (WCAG)](https://www.w3.org/WAI/standards-guidelines/wcag/)
define requirements for designers and developers to improve accessibility for
people with disabilities. This statement applies to {{.SiteRoot}} and targets
WCAG {{.WCAGVersion}} level AA.
{{if .Compliant}}
An automated scan of {{.PagesScanned}} pages on {{.ScannedAt}} found no
violations of the checked criteria. Automated checks cover only part of the
guidelines; manual review is still recommended.
{{- else}}
An automated scan of {{.PagesScanned}} pages on {{.ScannedAt}} found the
non-compliances listed below. We aim to resolve them by {{.RoadmapDate}}.

## Non-accessible content
{{range $cat := .Categories}}
### {{$cat}}
{{range $g := index $.ByCategory $cat}}
**{{$g.Criterion}}**
{{range $g.Items}}
- {{.Page}}{{if .Selector}} (` + "`{{.Selector}}`" + `){{end}} — {{.Summary}} ({{.Impact}}). Fix: {{.Fix}}
{{- end}}
{{end}}
{{- end}}
{{- end}}

## Feedback

We welcome your feedback on the accessibility of this site.
{{- if .ContactName}} Please contact {{.ContactName}}{{if .ContactEmail}} at {{.ContactEmail}}{{end}}.
{{- else if .ContactEmail}} Please contact us at {{.ContactEmail}}.
{{- end}}
{{- if .SLADays}} We aim to respond within {{.SLADays}} business days.{{end}}

---

*This statement was prepared on {{.ScannedAt}} based on an automated scan.*
`

// statementView wraps the statement with the derived category index the
// template iterates over.
type statementView struct {
	*report.Statement
	Categories []string
	ByCategory map[string][]report.StatementGroup
}

var tmpl = template.Must(template.New("statement").Parse(statementTemplate))

// RenderStatement produces the Markdown accessibility statement.
func RenderStatement(s *report.Statement) (string, error) {
	view := statementView{
		Statement:  s,
		ByCategory: make(map[string][]report.StatementGroup),
	}
	for _, g := range s.Groups {
		if _, seen := view.ByCategory[g.Category]; !seen {
			view.Categories = append(view.Categories, g.Category)
		}
		view.ByCategory[g.Category] = append(view.ByCategory[g.Category], g)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, view); err != nil {
		return "", fmt.Errorf("rendering accessibility statement: %w", err)
	}
	return b.String(), nil
}
