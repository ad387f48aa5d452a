package output

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"

	"github.com/ropa/arrear-calculator/internal/domain"
	pkgdec "github.com/ropa/arrear-calculator/pkg/decimal"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Pay matrix image layout, in pixels.
const (
	MatrixImageWidth = 720
	titleHeight      = 50
	headerHeight     = 40
	rowHeight        = 30
	paddingBottom    = 30

	titleX    = 200
	levelHdrX = 60
	levelX    = 70
	oldBasicX = 230
	newBasicX = 470
	ruleFromX = 40
	ruleToX   = 680
)

var (
	inkColor  = color.Black
	ruleColor = color.RGBA{R: 0x9C, G: 0xA3, B: 0xAF, A: 0xFF}
)

// PayMatrixImageName is the download name for a grade's pay matrix image.
func PayMatrixImageName(gp domain.GradePay) string {
	return fmt.Sprintf("pay_matrix_gp_%d.png", gp)
}

// MatrixImageHeight returns the rendered height for a matrix with n steps.
func MatrixImageHeight(n int) int {
	return titleHeight + headerHeight + n*rowHeight + paddingBottom
}

// RenderPayMatrixPNG draws the revised pay matrix of one grade pay as a PNG.
func RenderPayMatrixPNG(gp domain.GradePay, w io.Writer) error {
	matrix, err := domain.RevisedPayMatrices.Matrix(gp)
	if err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, MatrixImageWidth, MatrixImageHeight(len(matrix))))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	d := &font.Drawer{Dst: img, Src: image.NewUniform(inkColor), Face: basicfont.Face7x13}
	drawText(d, titleX, 30, fmt.Sprintf("Revised Pay Matrix - GP %d", gp))

	headerY := titleHeight + 25
	drawText(d, levelHdrX, headerY, "Level")
	drawText(d, oldBasicX, headerY, "Pre-Revised Basic")
	drawText(d, newBasicX, headerY, "Revised Basic")
	for x := ruleFromX; x <= ruleToX; x++ {
		img.Set(x, headerY+6, ruleColor)
	}

	for i, step := range matrix {
		y := headerY + (i+1)*rowHeight
		drawText(d, levelX, y, strconv.Itoa(i+1))
		drawText(d, oldBasicX, y, pkgdec.NewMoneyFromDecimal(step.OldBasic).FormatPlain())
		drawText(d, newBasicX, y, pkgdec.NewMoneyFromDecimal(step.NewBasic).FormatPlain())
	}

	return png.Encode(w, img)
}

func drawText(d *font.Drawer, x, y int, s string) {
	d.Dot = fixed.P(x, y)
	d.DrawString(s)
}
