package views

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// Detail is the product overlay. Token identifies the request that produced it.
type Detail struct {
	ID              int
	Title           string
	Image           string
	Category        string
	Price           string
	DescriptionHTML template.HTML
	Stars           Stars
	ReviewCount     int
	Token           uint64
}

var (
	markdown = goldmark.New(goldmark.WithRendererOptions(html.WithHardWraps()))
	policy   = newDescriptionPolicy()
)

func newDescriptionPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// NewDetail builds the overlay of a freshly fetched product.
func NewDetail(p models.Product, token uint64) Detail {
	return Detail{
		ID:              p.ID,
		Title:           p.Title,
		Image:           p.Image,
		Category:        strings.ToUpper(p.Category),
		Price:           Price(p.Price),
		DescriptionHTML: RenderDescription(p.Description),
		Stars:           StarsFor(p.Rating.Rate),
		ReviewCount:     p.Rating.Count,
		Token:           token,
	}
}

// RenderDescription converts a Markdown description to sanitized HTML.
// Plain text comes out as a single paragraph.
func RenderDescription(src string) template.HTML {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<p>" + template.HTMLEscapeString(src) + "</p>")
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes()))
}
