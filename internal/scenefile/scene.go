// Package scenefile decodes TOML scene descriptions and renders them with
// painter.
//
// A scene names an image size, a camera and the things to draw: world
// points, segments, labels and Gaussians seen through the camera, plus 2D
// shapes given directly in pixel coordinates. Colors are names understood
// by painter.ParseColor or hex strings.
//
//	width = 640
//	height = 480
//
//	[camera]
//	fx = 500.0
//	fy = 500.0
//	cx = 320.0
//	cy = 240.0
//
//	[[points]]
//	position = [0.0, 0.0, 4.0]
//	color = "red"
//
//	[[shapes]]
//	kind = "hollow_rectangle"
//	x = 10
//	y = 10
//	width = 100
//	height = 40
package scenefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Shape kinds accepted in [[shapes]] tables.
const (
	KindRectangle       = "rectangle"
	KindHollowRectangle = "hollow_rectangle"
	KindLine            = "line"
	KindNaiveLine       = "naive_line"
	KindDashedLine      = "dashed_line"
	KindCircle          = "circle"
	KindHollowCircle    = "hollow_circle"
	KindEllipse         = "ellipse"
	KindGaussian        = "gaussian"
	KindText            = "text"
)

var knownKinds = map[string]bool{
	KindRectangle:       true,
	KindHollowRectangle: true,
	KindLine:            true,
	KindNaiveLine:       true,
	KindDashedLine:      true,
	KindCircle:          true,
	KindHollowCircle:    true,
	KindEllipse:         true,
	KindGaussian:        true,
	KindText:            true,
}

// Defaults applied to fields left out of a scene file.
const (
	DefaultBackground = "black"
	DefaultColor      = "white"
	DefaultFontSize   = 12
)

// ErrInvalidScene is returned, wrapped, for scenes that decode but cannot
// be rendered.
var ErrInvalidScene = errors.New("scenefile: invalid scene")

// Scene is the root of a scene file.
type Scene struct {
	Width       int     `toml:"width"`
	Height      int     `toml:"height"`
	Background  string  `toml:"background"`
	SigmaScale  float64 `toml:"sigma_scale"`
	PointRadius int     `toml:"point_radius"`
	FontSize    int     `toml:"font_size"`

	Camera   Camera    `toml:"camera"`
	Points   []Point   `toml:"points"`
	Segments []Segment `toml:"segments"`
	Texts    []Text    `toml:"texts"`
	Ellipses []Ellipse `toml:"ellipses"`
	Shapes   []Shape   `toml:"shapes"`
}

// Camera holds pinhole intrinsics and the camera pose in the world.
// Rotation is a unit quaternion ordered w, x, y, z; it may be omitted.
type Camera struct {
	Fx       float64   `toml:"fx"`
	Fy       float64   `toml:"fy"`
	Cx       float64   `toml:"cx"`
	Cy       float64   `toml:"cy"`
	Position []float64 `toml:"position"`
	Rotation []float64 `toml:"rotation"`
}

// Point is a world point drawn as a disc. A zero radius uses the scene
// point_radius and a negative one hides the point.
type Point struct {
	Position []float64 `toml:"position"`
	Color    string    `toml:"color"`
	Radius   int       `toml:"radius"`
}

// Segment is a world segment. A positive DotStep draws it dashed.
type Segment struct {
	Start   []float64 `toml:"start"`
	End     []float64 `toml:"end"`
	Color   string    `toml:"color"`
	DotStep int       `toml:"dot_step"`
}

// Text is a label anchored at a world point.
type Text struct {
	Position []float64 `toml:"position"`
	Text     string    `toml:"text"`
	Color    string    `toml:"color"`
	Size     int       `toml:"size"`
}

// Ellipse is a world Gaussian. Covariance is the row-major 3x3 matrix.
type Ellipse struct {
	Mean       []float64 `toml:"mean"`
	Covariance []float64 `toml:"covariance"`
	Color      string    `toml:"color"`
}

// Shape is a 2D primitive in pixel coordinates. Which fields matter
// depends on Kind:
//
//   - rectangle, hollow_rectangle: x, y, width, height
//   - line, naive_line: x, y, x2, y2
//   - dashed_line: x, y, x2, y2, step
//   - circle, hollow_circle: x, y, radius
//   - ellipse: x, y, rx, ry
//   - gaussian: x, y, covariance as [xx, xy, yy]
//   - text: x, y, text, size
type Shape struct {
	Kind       string    `toml:"kind"`
	X          int       `toml:"x"`
	Y          int       `toml:"y"`
	X2         int       `toml:"x2"`
	Y2         int       `toml:"y2"`
	Width      int       `toml:"width"`
	Height     int       `toml:"height"`
	Radius     int       `toml:"radius"`
	RX         int       `toml:"rx"`
	RY         int       `toml:"ry"`
	Step       int       `toml:"step"`
	Covariance []float64 `toml:"covariance"`
	Text       string    `toml:"text"`
	Size       int       `toml:"size"`
	Color      string    `toml:"color"`
}

// Load reads and validates the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("scenefile: read: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scene. Keys that do not belong to the
// scene format are rejected.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, fmt.Errorf("scenefile: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidScene, strings.Join(keys, ", "))
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scene) applyDefaults() {
	if s.Background == "" {
		s.Background = DefaultBackground
	}
	if s.FontSize == 0 {
		s.FontSize = DefaultFontSize
	}
}

// Validate reports every problem found in s, joined into one error.
func (s *Scene) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidScene, fmt.Sprintf(format, args...)))
	}

	if s.Width <= 0 || s.Height <= 0 {
		add("image size %dx%d", s.Width, s.Height)
	}
	if s.SigmaScale < 0 {
		add("negative sigma_scale %v", s.SigmaScale)
	}
	if len(s.Camera.Position) != 0 && len(s.Camera.Position) != 3 {
		add("camera.position needs 3 values, got %d", len(s.Camera.Position))
	}
	if len(s.Camera.Rotation) != 0 && len(s.Camera.Rotation) != 4 {
		add("camera.rotation needs 4 values, got %d", len(s.Camera.Rotation))
	}
	checkColor := func(where, c string) {
		if c == "" {
			return
		}
		if _, ok := parseColor(c); !ok {
			add("%s: unknown color %q", where, c)
		}
	}
	checkColor("background", s.Background)

	for i, p := range s.Points {
		where := fmt.Sprintf("points[%d]", i)
		if len(p.Position) != 3 {
			add("%s: position needs 3 values", where)
		}
		checkColor(where, p.Color)
	}
	for i, seg := range s.Segments {
		where := fmt.Sprintf("segments[%d]", i)
		if len(seg.Start) != 3 || len(seg.End) != 3 {
			add("%s: start and end need 3 values", where)
		}
		if seg.DotStep < 0 {
			add("%s: negative dot_step", where)
		}
		checkColor(where, seg.Color)
	}
	for i, t := range s.Texts {
		where := fmt.Sprintf("texts[%d]", i)
		if len(t.Position) != 3 {
			add("%s: position needs 3 values", where)
		}
		checkColor(where, t.Color)
	}
	for i, e := range s.Ellipses {
		where := fmt.Sprintf("ellipses[%d]", i)
		if len(e.Mean) != 3 {
			add("%s: mean needs 3 values", where)
		}
		if len(e.Covariance) != 9 {
			add("%s: covariance needs 9 values", where)
		}
		checkColor(where, e.Color)
	}
	for i, sh := range s.Shapes {
		where := fmt.Sprintf("shapes[%d]", i)
		if !knownKinds[sh.Kind] {
			add("%s: unknown kind %q", where, sh.Kind)
			continue
		}
		if sh.Kind == KindGaussian && len(sh.Covariance) != 3 {
			add("%s: gaussian covariance needs [xx, xy, yy]", where)
		}
		if sh.Kind == KindDashedLine && sh.Step <= 0 {
			add("%s: dashed_line needs a positive step", where)
		}
		checkColor(where, sh.Color)
	}
	return errors.Join(errs...)
}
