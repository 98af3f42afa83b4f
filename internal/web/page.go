package web

import (
	"fmt"
	"strings"
	"time"

	"UnrulyHuman/internal/domain/checkout"
	"UnrulyHuman/internal/domain/payment"
)

// ImageBaseURL hosts the product photography.
const ImageBaseURL = "https://unrulyhuman.com/images/"

// MissingReference is shown on the success page when no session id came back.
const MissingReference = "—"

type Meta struct {
	Title         string
	Description   string
	Keywords      []string
	OGTitle       string
	OGDescription string
	OGType        string
}

var SiteMeta = Meta{
	Title: "UNRULY HUMAN | Alloy 000 Bomber Jacket",
	Description: "Wearable art from artist Ethan S. Brewerton. The Alloy 000 Bomber Jacket features hand-drawn " +
		"biomechanical patterns, premium materials, and is manufactured in England. Limited edition.",
	Keywords: []string{
		"bomber jacket", "wearable art", "biomechanical", "limited edition",
		"fashion", "art fashion", "Ethan Brewerton", "Unruly Human",
	},
	OGTitle:       "UNRULY HUMAN | Alloy 000 Bomber Jacket",
	OGDescription: "Wearable art. Hand-drawn biomechanical patterns. Made in England. $300.",
	OGType:        "website",
}

type Slide struct {
	Index int    `json:"index"`
	Src   string `json:"src"`
	Alt   string `json:"-"`
}

var HeroSlides = []Slide{
	{Index: 0, Src: ImageBaseURL + "hero_lifestyle.jpg", Alt: "Alloy 000 Bomber Jacket"},
	{Index: 1, Src: ImageBaseURL + "pattern_detail.jpg", Alt: "Alloy 000 Bomber Jacket"},
	{Index: 2, Src: ImageBaseURL + "DSC01001.jpg", Alt: "Alloy 000 Bomber Jacket"},
}

type LandingPage struct {
	Meta         Meta
	Slides       []Slide
	Sizes        []checkout.Size
	DefaultSize  checkout.Size
	Price        string
	ImageBase    string
	HeroInterval int64 // milliseconds
	Year         int
}

func NewLandingPage(heroInterval time.Duration, now time.Time) LandingPage {
	return LandingPage{
		Meta:         SiteMeta,
		Slides:       HeroSlides,
		Sizes:        checkout.AvailableSizes,
		DefaultSize:  checkout.DefaultSize,
		Price:        fmt.Sprintf("$%d", checkout.UnitAmount/100),
		ImageBase:    ImageBaseURL,
		HeroInterval: heroInterval.Milliseconds(),
		Year:         now.Year(),
	}
}

type SuccessPage struct {
	Meta           Meta
	OrderReference string
}

// NewSuccessPage is display-only: the session id is not looked up anywhere.
func NewSuccessPage(sessionID string) SuccessPage {
	ref := payment.OrderReference(sessionID)
	if ref == "" {
		ref = MissingReference
	}
	return SuccessPage{Meta: SiteMeta, OrderReference: ref}
}

func joinStrings(items []string, sep string) string {
	return strings.Join(items, sep)
}
