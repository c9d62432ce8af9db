package views

import (
	"context"
	"strings"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"elaundry/internal/dto"
	"elaundry/internal/entities"
	"elaundry/internal/orderform"
	"elaundry/internal/services"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func testPage(t *testing.T) Page {
	t.Helper()
	content, err := services.NewContentService()
	require.NoError(t, err)
	return Page{
		Content: content.Content(),
		Form: FormView{
			Branches: []orderform.BranchOption{{Value: "1", Label: "Dhanmondi Branch"}, {Value: "2", Label: "Gulshan Branch"}},
			Draft:    entities.OrderDraft{BranchID: "1"},
		},
		Year: 2025,
	}
}

func TestLayoutHasMetadataFormAndFooter(t *testing.T) {
	html := render(t, ServicePage(testPage(t)))

	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
	assert.Contains(t, html, "<title>eLaundry - OrbGenix</title>")
	assert.Contains(t, html, "Place Your Order")
	assert.Contains(t, html, "© 2025 eLaundry. All rights reserved. A Product of ")
	assert.Contains(t, html, `href="https://orbgenix.com"`)
	assert.Contains(t, html, "Our Services")
	assert.Contains(t, html, "Blazer – $15")
	assert.Contains(t, html, "<strong>within 24 hours</strong>")
	assert.NotContains(t, html, "live.js")
}

func TestOrderFormPreselectsBranchAndKeepsDraft(t *testing.T) {
	v := testPage(t).Form
	v.Draft.Name = `Rahim "R" <b>`
	v.Draft.ServiceType = entities.ServiceDryClean

	html := render(t, OrderForm(v))
	assert.Contains(t, html, `<option value="1" selected>Dhanmondi Branch</option>`)
	assert.Contains(t, html, `<option value="dry_clean" selected>Dry Cleaning</option>`)
	assert.Contains(t, html, "Rahim &#34;R&#34; &lt;b&gt;")
	assert.Contains(t, html, ">Select Branch</label>")
	assert.NotContains(t, html, "order-notification")
}

func TestOrderFormRendersWithoutNotification(t *testing.T) {
	v := testPage(t).Form
	require.Nil(t, v.Notification)

	html := render(t, OrderForm(v))
	assert.Contains(t, html, "Place Your Order")
	assert.NotContains(t, html, `role="alert"`)
}

func TestOrderFormMarksScheduleRequired(t *testing.T) {
	html := render(t, OrderForm(testPage(t).Form))

	assert.Contains(t, html, ">Pickup Date *</label>")
	assert.Contains(t, html, ">Pickup Time *</label>")
	assert.Contains(t, html, `<input type="date" name="date" id="field-date" value="" required`)
	assert.Contains(t, html, `<input type="time" name="time" id="field-time" value="" required`)
}

func TestFailedSubmitShowsOnlyFormLevelNotice(t *testing.T) {
	f := orderform.New([]entities.Branch{{ID: "1", Name: "Dhanmondi Branch"}}, nil, nil, orderform.Options{RequireBranch: true})
	require.NoError(t, f.SetAll(map[string]string{
		orderform.FieldPhone:       "01712345678",
		orderform.FieldAddress:     "House 42",
		orderform.FieldServiceType: string(entities.ServiceWash),
	}))
	res := f.Submit(context.Background())
	require.False(t, res.Accepted)
	require.Contains(t, res.Missing, orderform.FieldName)

	html := render(t, OrderForm(FormViewOf(f)))
	assert.Contains(t, html, orderform.MessageMissingFields)
	assert.Contains(t, html, "bg-red-100")
	assert.Contains(t, html, ">Select Branch *</label>")
	assert.Equal(t, 1, strings.Count(html, `role="alert"`))
	assert.NotContains(t, html, "border-red-500")
	assert.NotContains(t, html, "This field is required.")
	assert.Contains(t, html, `value="01712345678"`)
}

func TestBranchMapListAndPlaceholders(t *testing.T) {
	phone := "+8801712345678"
	hours := "9am - 9pm"
	view := dto.DirectoryViewDTO{
		Query: "road",
		Shown: 2,
		Branches: []dto.BranchDTO{
			dto.BranchToDTO(entities.Branch{ID: "1", Name: "Dhanmondi Branch", Address: null.StringFrom("House 42, Road 11"), Phone: null.StringFrom(phone), Hours: null.StringFrom(hours)}),
			dto.BranchToDTO(entities.Branch{ID: "3", Name: "Road Kiosk"}),
		},
		Selected: "1",
	}

	html := render(t, BranchMap(MapView{View: view, TileURL: "https://tiles/{z}/{x}/{y}.png"}))
	assert.Contains(t, html, "2 shown")
	assert.Contains(t, html, "+8801712345678 ·9am - 9pm")
	assert.Contains(t, html, " Hours N/A")
	assert.Contains(t, html, entities.AddressPlaceholder)
	assert.Contains(t, html, `href="/api/branches/1/call"`)
	assert.Contains(t, html, "<button type=\"button\" disabled")
	assert.Contains(t, html, "ring-indigo-300")
	assert.Contains(t, html, `data-tile-url="https://tiles/{z}/{x}/{y}.png"`)
	assert.Contains(t, html, `value="road"`)
	assert.NotContains(t, html, "No branches found.")
}

func TestBranchMapEmptyState(t *testing.T) {
	html := render(t, BranchMap(MapView{View: dto.DirectoryViewDTO{Query: "zzz"}}))
	assert.Contains(t, html, "0 shown")
	assert.Contains(t, html, "No branches found.")
}

func TestLandingPage(t *testing.T) {
	d := LandingData{
		Page:   testPage(t),
		Slides: Slides{Images: []string{"/static/shirt.png", "/static/shirt2.png"}, Current: 1},
	}
	d.Live = true

	html := render(t, LandingPage(d))
	assert.Contains(t, html, "E-Londri")
	assert.Contains(t, html, `src="/static/shirt2.png"`)
	assert.Contains(t, html, "Reserve Service →")
	assert.Contains(t, html, "/static/js/live.js")
}

func TestProfilePage(t *testing.T) {
	d := ProfileData{
		Page:    testPage(t),
		Profile: entities.Profile{Name: "John Doe", Email: "john@example.com"},
		Orders:  []entities.OrderRecord{{ID: 2, Service: "Dry Clean", Status: entities.OrderInProgress, Date: "2025-12-05"}},
	}

	html := render(t, ProfilePage(d))
	assert.Contains(t, html, ">J</div>")
	assert.Contains(t, html, "bg-blue-100 text-blue-700")
	assert.Contains(t, html, "In Progress")
	assert.Contains(t, html, "Edit Profile")
}
