// Package export renders weapons into downloadable files
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/KirkDiggler/fabula-api/internal/entities"
	"github.com/KirkDiggler/fabula-api/internal/errors"
)

// Content types of exported files
const (
	ContentTypeJSON = "application/json"
	ContentTypePNG  = "image/png"
)

// File is an exported attachment
type File struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

// FileName builds the download name for an item: whitespace becomes "_"
// and the result is lower-cased ("Iron Sword", "json" -> "iron_sword.json").
func FileName(name, ext string) string {
	base := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return '_'
		}
		return r
	}, name)
	return strings.ToLower(base) + "." + ext
}

// WeaponJSON serializes a weapon in its import/export form
func WeaponJSON(w entities.Weapon) (*File, error) {
	data, err := json.Marshal(w)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal weapon %s", w.Name)
	}
	return &File{
		FileName:    FileName(w.Name, "json"),
		ContentType: ContentTypeJSON,
		Data:        data,
	}, nil
}

// AccuracyFormula formats the accuracy check, e.g. "[DEX + MIG] +1"
func AccuracyFormula(w entities.Weapon) string {
	formula := fmt.Sprintf("[%s + %s]", w.Att1.ShortName(), w.Att2.ShortName())
	if w.Prec != 0 {
		formula += fmt.Sprintf(" +%d", w.Prec)
	}
	return formula
}

// DamageFormula formats the damage roll, e.g. "[HR + 10] physical"
func DamageFormula(w entities.Weapon) string {
	return fmt.Sprintf("[HR + %d] %s", w.Damage, w.Type)
}

// HandsLabel describes how many hands the weapon needs
func HandsLabel(w entities.Weapon) string {
	switch w.Hands {
	case 1:
		return "One-handed"
	case 2:
		return "Two-handed"
	default:
		return ""
	}
}

// RangeLabel describes whether the weapon is melee or ranged
func RangeLabel(w entities.Weapon) string {
	switch {
	case w.Melee && w.Ranged:
		return "Melee / Ranged"
	case w.Melee:
		return "Melee"
	case w.Ranged:
		return "Ranged"
	default:
		return ""
	}
}

// QualityLabel returns the quality text without markdown emphasis
func QualityLabel(w entities.Weapon) string {
	q := strings.TrimSpace(strings.ReplaceAll(w.Quality, "**", ""))
	if q == "" {
		return "No Qualities"
	}
	return q
}

// Card layout
const (
	cardWidth   = 560
	rowHeight   = 24
	paddingX    = 8
	columnCost  = 190
	columnAcc   = 260
	columnDmg   = 400
	qualityRows = 2
)

var (
	colorPrimary   = color.RGBA{R: 0x2b, G: 0x4b, B: 0x42, A: 0xff}
	colorSecondary = color.RGBA{R: 0x99, G: 0xb5, B: 0xab, A: 0xff}
	colorTernary   = color.RGBA{R: 0xd9, G: 0xe7, B: 0xe2, A: 0xff}
)

// WeaponCardPNG draws the weapon card as a PNG
func WeaponCardPNG(w entities.Weapon) (*File, error) {
	quality := wrap(QualityLabel(w), (cardWidth-2*paddingX)/basicfont.Face7x13.Advance, qualityRows)
	height := rowHeight*3 + rowHeight*len(quality)

	img := image.NewRGBA(image.Rect(0, 0, cardWidth, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	fill(img, image.Rect(0, 0, cardWidth, rowHeight), colorPrimary)
	fill(img, image.Rect(0, rowHeight, cardWidth, rowHeight*2), colorTernary)
	for i := 1; i <= 2+len(quality); i++ {
		fill(img, image.Rect(0, rowHeight*(i+1)-1, cardWidth, rowHeight*(i+1)), colorSecondary)
	}

	header := &font.Drawer{Dst: img, Src: image.White, Face: basicfont.Face7x13}
	text(header, paddingX, 0, "WEAPON")
	text(header, columnCost, 0, "COST")
	text(header, columnAcc, 0, "ACCURACY")
	text(header, columnDmg, 0, "DAMAGE")

	body := &font.Drawer{Dst: img, Src: image.Black, Face: basicfont.Face7x13}
	text(body, paddingX, 1, w.Name)
	text(body, columnCost, 1, fmt.Sprintf("%dz", w.Cost))
	text(body, columnAcc, 1, AccuracyFormula(w))
	text(body, columnDmg, 1, DamageFormula(w))

	text(body, paddingX, 2, w.Category)
	text(body, columnAcc, 2, HandsLabel(w))
	text(body, columnDmg, 2, RangeLabel(w))

	for i, line := range quality {
		text(body, paddingX, 3+i, line)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrapf(err, "failed to encode weapon card %s", w.Name)
	}

	return &File{
		FileName:    FileName(w.Name, "png"),
		ContentType: ContentTypePNG,
		Data:        buf.Bytes(),
	}, nil
}

func fill(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func text(d *font.Drawer, x, row int, s string) {
	// basicfont.Face7x13 has an ascent of 11 pixels
	d.Dot = fixed.P(x, row*rowHeight+(rowHeight+11)/2)
	d.DrawString(s)
}

// wrap splits s into at most maxLines lines of width columns, truncating the last one.
func wrap(s string, width, maxLines int) []string {
	words := strings.Fields(s)
	lines := []string{}
	current := ""
	for _, word := range words {
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	if len(lines) > maxLines {
		last := strings.Join(lines[maxLines-1:], " ")
		if len(last) > width {
			last = last[:width-3] + "..."
		}
		lines = append(lines[:maxLines-1], last)
	}
	return lines
}
