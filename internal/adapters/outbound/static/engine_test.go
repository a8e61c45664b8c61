package static

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a11yscan/a11yscan/internal/domain"
)

func evaluate(t *testing.T, html string) []domain.RawViolation {
	t.Helper()
	out, err := NewEngine().Evaluate(context.Background(), &domain.RenderResult{
		URL:  "https://example.com/",
		HTML: html,
	})
	require.NoError(t, err)
	return out
}

func findRule(violations []domain.RawViolation, id string) *domain.RawViolation {
	for i := range violations {
		if violations[i].RuleID == id {
			return &violations[i]
		}
	}
	return nil
}

const cleanPage = `<!DOCTYPE html>
<html lang="en"><head><title>Fine</title></head>
<body>
  <h1>Welcome</h1>
  <img src="x.png" alt="A description">
  <a href="/about">About us</a>
  <form><label for="q">Search</label><input id="q" type="text"></form>
  <button>Go</button>
</body></html>`

func TestEngine_CleanPageHasNoViolations(t *testing.T) {
	assert.Empty(t, evaluate(t, cleanPage))
}

func TestEngine_ImageAlt(t *testing.T) {
	out := evaluate(t, `<html lang="en"><head><title>t</title></head><body>
		<img src="a.png">
		<img src="b.png" alt="">
		<img src="c.png" id="hero">
	</body></html>`)

	v := findRule(out, "image-alt")
	require.NotNil(t, v)
	assert.Equal(t, "critical", v.Impact)
	assert.Len(t, v.Targets, 2, "empty alt is decorative, missing alt is not")
	assert.Contains(t, v.Targets, "#hero")
	assert.Contains(t, v.HelpURL, "image-alt")
}

func TestEngine_DocumentTitleAndLang(t *testing.T) {
	out := evaluate(t, `<html><head></head><body><p>hi</p></body></html>`)

	assert.NotNil(t, findRule(out, "document-title"))
	assert.NotNil(t, findRule(out, "html-has-lang"))
}

func TestEngine_LinkName(t *testing.T) {
	out := evaluate(t, `<html lang="en"><head><title>t</title></head><body>
		<a href="/a"></a>
		<a href="/b" aria-label="labelled"></a>
		<a href="/c"><img src="i.png" alt="icon"></a>
		<a href="/d"><img src="i.png" alt=""></a>
	</body></html>`)

	v := findRule(out, "link-name")
	require.NotNil(t, v)
	assert.Len(t, v.Targets, 2)
}

func TestEngine_ButtonName(t *testing.T) {
	out := evaluate(t, `<html lang="en"><head><title>t</title></head><body>
		<button id="empty"></button>
		<button title="named by title"></button>
	</body></html>`)

	v := findRule(out, "button-name")
	require.NotNil(t, v)
	assert.Equal(t, []string{"#empty"}, v.Targets)
}

func TestEngine_Label(t *testing.T) {
	out := evaluate(t, `<html lang="en"><head><title>t</title></head><body><form>
		<input type="text" id="unlabelled">
		<label for="named">Name</label><input type="text" id="named">
		<label>Wrapped <input type="text"></label>
		<input type="email" aria-label="Email">
		<input type="hidden" name="csrf">
		<input type="submit" value="Send">
	</form></body></html>`)

	v := findRule(out, "label")
	require.NotNil(t, v)
	assert.Equal(t, []string{"#unlabelled"}, v.Targets)
}

func TestEngine_FrameTitle(t *testing.T) {
	out := evaluate(t, `<html lang="en"><head><title>t</title></head><body>
		<iframe src="a.html"></iframe>
		<iframe src="b.html" title="Map"></iframe>
	</body></html>`)

	v := findRule(out, "frame-title")
	require.NotNil(t, v)
	assert.Len(t, v.Targets, 1)
}

func TestEngine_MetaViewport(t *testing.T) {
	blocked := `<html lang="en"><head><title>t</title>
		<meta name="viewport" content="width=device-width, user-scalable=no"></head><body></body></html>`
	v := findRule(evaluate(t, blocked), "meta-viewport")
	require.NotNil(t, v)

	capped := `<html lang="en"><head><title>t</title>
		<meta name="viewport" content="maximum-scale=1.0"></head><body></body></html>`
	assert.NotNil(t, findRule(evaluate(t, capped), "meta-viewport"))

	fine := `<html lang="en"><head><title>t</title>
		<meta name="viewport" content="width=device-width, initial-scale=1"></head><body></body></html>`
	assert.Nil(t, findRule(evaluate(t, fine), "meta-viewport"))
}

func TestEngine_EmptyHeading(t *testing.T) {
	out := evaluate(t, `<html lang="en"><head><title>t</title></head><body>
		<h1>Real heading</h1>
		<h2 class="spacer"></h2>
	</body></html>`)

	v := findRule(out, "empty-heading")
	require.NotNil(t, v)
	assert.Equal(t, "minor", v.Impact)
	assert.Equal(t, []string{"h2.spacer"}, v.Targets)
}

func TestEngine_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewEngine().Evaluate(ctx, &domain.RenderResult{HTML: cleanPage})
	assert.Error(t, err)
}

func TestEngine_ImpactsAllMapped(t *testing.T) {
	for _, r := range NewEngine().rules {
		_, ok := domain.SeverityFromImpact(r.impact)
		assert.True(t, ok, "rule %s declares unmapped impact %q", r.id, r.impact)
	}
}
