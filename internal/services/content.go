package services

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// ServiceCard is one offered service or selling point. Body is rendered
// HTML from the Markdown source.
type ServiceCard struct {
	Title string
	Icon  string
	Body  template.HTML
}

type PriceList struct {
	Title string
	Items []string
}

type FooterLink struct {
	Label string
	Href  string
}

type ContactLine struct {
	Icon  string
	Label string
	Href  string
}

// Content is the copy shared by the landing, service and profile pages.
type Content struct {
	SiteTitle       string
	SiteDescription string
	About           template.HTML
	Services        []ServiceCard
	Features        []ServiceCard
	Pricing         []PriceList
	NavLinks        []FooterLink
	QuickLinks      []FooterLink
	FooterServices  []FooterLink
	Contact         []ContactLine
	Socials         []FooterLink
	CreditName      string
	CreditURL       string
}

type ContentService struct {
	content Content
}

type cardSource struct {
	title, icon, markdown string
}

var serviceSources = []cardSource{
	{"Wash & Fold", "badge-check", "Perfect for everyday laundry. We wash, dry and neatly fold your clothes."},
	{"Dry Cleaning", "truck", "Premium dry cleaning for suits, sarees, coats, jackets, and delicate fabrics."},
	{"Ironing / Press", "clock", "Get perfectly pressed clothes with crisp finishing."},
}

var featureSources = []cardSource{
	{"Free Pickup & Delivery", "truck", "We collect your laundry from your doorstep and deliver it fresh."},
	{"Express Delivery", "clock", "Get your laundry delivered **within 24 hours** with our express option."},
	{"Affordable Pricing", "check-circle", "Best prices in town with premium quality service."},
	{"Quality Guaranteed", "badge-check", "We use top-grade detergents & careful handling for every fabric."},
}

const aboutMarkdown = "eLaundry is your trusted laundry service. We provide fast, reliable, " +
	"and affordable laundry and dry-cleaning services at your doorstep."

// NewContentService renders all Markdown once. The sources are fixed, so a
// render failure is a programming error and is returned to the caller.
func NewContentService() (*ContentService, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	about, err := render(md, aboutMarkdown)
	if err != nil {
		return nil, err
	}
	services, err := renderCards(md, serviceSources)
	if err != nil {
		return nil, err
	}
	features, err := renderCards(md, featureSources)
	if err != nil {
		return nil, err
	}

	return &ContentService{content: Content{
		SiteTitle:       "eLaundry - OrbGenix",
		SiteDescription: "eLaundry is your trusted laundry service. We provide fast, reliable, and affordable laundry and dry- cleaning services at your doorstep.",
		About:           about,
		Services:        services,
		Features:        features,
		Pricing: []PriceList{
			{Title: "Wash & Fold", Items: []string{"Shirt – $2", "Pant – $2.5", "Kurti – $3", "Bedsheet – $4"}},
			{Title: "Dry Cleaning", Items: []string{"Suit – $10", "Saree – $8", "Jacket – $12", "Blazer – $15"}},
			{Title: "Iron / Press", Items: []string{"Shirt – $1", "Pant – $1.5", "Saree – $3", "Blouse – $1.2"}},
		},
		NavLinks: []FooterLink{
			{Label: "Services", Href: "/service"},
			{Label: "Help", Href: "#contact"},
			{Label: "Pricing", Href: "/service#pricing"},
			{Label: "Recyclers", Href: "#"},
		},
		QuickLinks: []FooterLink{
			{Label: "Home", Href: "/"},
			{Label: "Services", Href: "/service"},
			{Label: "Pricing", Href: "/service#pricing"},
			{Label: "Contact Us", Href: "#contact"},
		},
		FooterServices: []FooterLink{
			{Label: "Wash", Href: "/service"},
			{Label: "Iron", Href: "/service"},
			{Label: "Wash & Iron", Href: "/service"},
			{Label: "Dry Cleaning", Href: "/service"},
		},
		Contact: []ContactLine{
			{Icon: "phone", Label: "+880 1XXXXXXXXX", Href: "tel:+8801XXXXXXXXX"},
			{Icon: "mail", Label: "info@elaundry.com", Href: "mailto:info@elaundry.com"},
			{Icon: "map-pin", Label: "Dhaka, Bangladesh"},
		},
		Socials: []FooterLink{
			{Label: "Facebook", Href: "#"},
			{Label: "Twitter", Href: "#"},
			{Label: "Instagram", Href: "#"},
			{Label: "LinkedIn", Href: "#"},
		},
		CreditName: "OrbGenix",
		CreditURL:  "https://orbgenix.com",
	}}, nil
}

func (s *ContentService) Content() Content { return s.content }

func renderCards(md goldmark.Markdown, sources []cardSource) ([]ServiceCard, error) {
	out := make([]ServiceCard, 0, len(sources))
	for _, src := range sources {
		body, err := render(md, src.markdown)
		if err != nil {
			return nil, fmt.Errorf("render %q: %w", src.title, err)
		}
		out = append(out, ServiceCard{Title: src.title, Icon: src.icon, Body: body})
	}
	return out, nil
}

// render converts Markdown to HTML. goldmark drops raw HTML unless
// WithUnsafe is set, so the output is safe to embed.
func render(md goldmark.Markdown, source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
