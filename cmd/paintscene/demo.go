package main

import (
	"fmt"
	"image"
	"math"
	"math/rand/v2"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/imgpaint/painter"
	"github.com/imgpaint/painter/camera"
	"github.com/imgpaint/painter/internal/imageio"
)

const (
	demoScale     = 3
	demoRows      = 90
	demoCols      = 180
	demoMaxValue  = 15.0
	demoImageRows = 480
	demoImageCols = 640
	demoSeed      = 42
)

type demoOpts struct {
	outputDir  string // directory receiving the demo images
	format     string // image format of the outputs
	background string // optional image to paint on instead of a plain canvas
}

func newDemoCmd() *cobra.Command {
	opts := demoOpts{outputDir: ".", format: imageio.PNG}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render the matrix, primitive and camera demo images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", opts.outputDir, "directory for the demo images")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: png, jpeg, bmp or tiff")
	cmd.Flags().StringVar(&opts.background, "background", "", "image to paint the primitives on")
	return cmd
}

func runDemo(cmd *cobra.Command, opts demoOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	ext := "." + opts.format
	if _, err := imageio.FormatFromPath(ext); err != nil {
		return err
	}

	matrix, err := matrixDemo()
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	primitives, err := primitivesDemo(opts.background)
	if err != nil {
		return err
	}
	images := []struct {
		name string
		img  image.Image
	}{
		{"matrix", matrix},
		{"primitives", primitives},
		{"camera", cameraDemo()},
	}

	for _, out := range images {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(opts.outputDir, out.name+ext)
		if err := imageio.Save(path, out.img); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
		size := out.img.Bounds().Size()
		logger.Info("Demo saved", "output", path, "size", fmt.Sprintf("%dx%d", size.X, size.Y))
	}
	return nil
}

// matrixDemo renders a noisy scaled identity matrix and paints gray
// primitives over it.
func matrixDemo() (*painter.GrayImage, error) {
	rng := rand.New(rand.NewPCG(demoSeed, demoSeed))
	m := mat.NewDense(demoRows, demoCols, nil)
	for i := 0; i < demoRows; i++ {
		for j := 0; j < demoCols; j++ {
			v := rng.Float64()*2 - 1
			if i == j {
				v += 10
			}
			m.Set(i, j, v)
		}
	}

	img := painter.NewGrayImage(demoRows*demoScale, demoCols*demoScale)
	if err := painter.ConvertMatrixToGray(m, img, demoMaxValue, demoScale); err != nil {
		return nil, err
	}

	c := painter.NewCanvas[uint8](img)
	c.DrawSolidRectangle(10, 10, 200, 200, 0)
	for i := 0; i < 10; i++ {
		c.DrawBresenhamLine(111-10*i, 10*i, 100, 100, 255)
	}
	c.DrawSolidCircle(130, 200, 10, 127)
	c.DrawString("This is a string.", 240, 100-16, 0, 99)
	c.DrawString("This is a string.", 240, 100, 127, 16)
	c.DrawMidBresenhamEllipse(180, 80, 40, 20, 127)
	return img, nil
}

// primitivesDemo paints the RGB primitives, including a fan of rotated
// trust regions, on background or on a plain gray canvas.
func primitivesDemo(background string) (*painter.RGBImage, error) {
	var img *painter.RGBImage
	if background != "" {
		src, err := imageio.Load(background)
		if err != nil {
			return nil, err
		}
		img = painter.RGBImageFromImage(src)
	} else {
		img = painter.NewRGBImage(demoImageRows, demoImageCols)
		img.Fill(painter.Gray)
	}

	c := painter.NewCanvas[painter.RGBPixel](img)
	c.DrawHollowRectangle(20, 20, 200, 200, painter.Yellow)
	for i := 0; i < 10; i++ {
		c.DrawNaiveLine(111-10*i, 10*i, 100, 100, painter.Green)
	}
	c.DrawHollowCircle(130, 200, 10, painter.Blue)
	c.DrawString("This is a string.", 0, 0, painter.Yellow, 24)
	c.DrawMidBresenhamEllipse(200, 200, 20, 70, painter.OrangeRed)
	c.DrawDashedLine(20, 300, 400, 300, 5, painter.Cyan)

	for angle := float32(0); angle < 3.14; angle += 0.785 {
		c.DrawTrustRegionOfGaussian(r2.Vec{X: 350, Y: 200}, rotatedCov(float64(angle), 20, 70), painter.Violet)
	}
	return img, nil
}

// rotatedCov returns R diag(sx, sy) Rᵀ for a rotation by angle.
func rotatedCov(angle, sx, sy float64) *mat.SymDense {
	sin, cos := math.Sincos(angle)
	cov := mat.NewSymDense(2, nil)
	cov.SymRankOne(cov, sx, mat.NewVecDense(2, []float64{cos, sin}))
	cov.SymRankOne(cov, sy, mat.NewVecDense(2, []float64{-sin, cos}))
	return cov
}

// cameraDemo looks at a unit cube from an oblique pose and draws its
// edges, corners, labels and a Gaussian at its centre.
func cameraDemo() *painter.RGBImage {
	img := painter.NewRGBImage(demoImageRows, demoImageCols)
	c := painter.NewCanvas[painter.RGBPixel](img, painter.WithPointRadius(3))

	cam := camera.NewView(500, 500, demoImageCols/2, demoImageRows/2)
	cam.PWC = r3.Vec{X: 0.5, Y: -1.5, Z: -3}
	cam.QWC = quat.Number(r3.NewRotation(-0.4, r3.Vec{X: 1}))

	var corners [8]r3.Vec
	for i := range corners {
		corners[i] = r3.Vec{X: float64(i & 1), Y: float64(i>>1&1), Z: float64(i>>2&1)}
	}
	for i := range corners {
		for _, bit := range []int{1, 2, 4} {
			if j := i | bit; j != i {
				c.RenderLineSegmentInCameraView(cam, corners[i], corners[j], painter.White)
			}
		}
	}
	c.RenderDashedLineSegmentInCameraView(cam, corners[0], corners[7], 4, painter.Cyan)
	for i, p := range corners {
		c.RenderPointInCameraView(cam, p, painter.Red, c.PointRadius())
		c.RenderTextInCameraView(cam, p, fmt.Sprintf("p%d", i), painter.Yellow, 16)
	}

	cov := mat.NewSymDense(3, []float64{
		0.02, 0.01, 0,
		0.01, 0.03, 0,
		0, 0, 0.01,
	})
	c.RenderEllipseInCameraView(cam, r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, cov, painter.Magenta)

	// A segment that runs behind the camera is clipped at the near plane.
	c.RenderLineSegmentInCameraView(cam, r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}, r3.Vec{X: 0.5, Y: -1.5, Z: -6}, painter.OrangeRed)
	return img
}
