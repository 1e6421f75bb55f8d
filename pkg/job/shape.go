package job

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hellenic-development/dxfkit/pkg/dxf"
	"github.com/hellenic-development/dxfkit/pkg/shape"
)

var errAmbiguous = errors.New("exactly one construction must be given")

func (v Vec) point() shape.Point { return shape.Pt(v[0], v[1]) }

func (s *Shape) properties() (shape.Properties, error) {
	var opts []shape.PropertyOption
	if s.Color != nil {
		opts = append(opts, shape.WithColor(*s.Color))
	}
	if s.Linetype != "" {
		opts = append(opts, shape.WithLinetype(s.Linetype))
	}
	if s.Thickness != nil {
		opts = append(opts, shape.WithThickness(*s.Thickness))
	}
	return shape.NewProperties(opts...)
}

func (s *Shape) draw(doc *dxf.Document) error {
	props, err := s.properties()
	if err != nil {
		return err
	}

	switch strings.ToLower(s.Type) {
	case "rectangle", "rect":
		r, err := s.rectangle()
		if err != nil {
			return err
		}
		if s.Open {
			r = r.Open()
		}
		return doc.Add(r.OnLayer(s.Layer).WithProperties(props))

	case "circle":
		c, err := s.circle()
		if err != nil {
			return err
		}
		return doc.Add(c.OnLayer(s.Layer).WithProperties(props))

	case "line":
		if s.From == nil || s.To == nil {
			return errors.New("line needs from and to")
		}
		_, err := doc.Line(s.From.point(), s.To.point(), s.Layer, props)
		return err

	case "text":
		if s.At == nil {
			return errors.New("text needs at")
		}
		h, err := parseHAlign(s.HAlign)
		if err != nil {
			return err
		}
		v, err := parseVAlign(s.VAlign)
		if err != nil {
			return err
		}
		opts := dxf.TextOptions{
			Text:   s.Text,
			At:     s.At.point(),
			HAlign: h,
			VAlign: v,
			Layer:  s.Layer,
			Props:  props,
		}
		if s.Height != nil {
			opts.Height = *s.Height
		}
		_, err = doc.Text(opts)
		return err

	default:
		return fmt.Errorf("unknown shape type %q", s.Type)
	}
}

func (s *Shape) rectangle() (*shape.Rectangle, error) {
	n := 0
	if s.X != nil || s.Y != nil {
		n++
	}
	if s.Center != nil {
		n++
	}
	if len(s.Corners) > 0 {
		n++
	}
	if n != 1 {
		return nil, fmt.Errorf("rectangle: %w (x/y, center or corners)", errAmbiguous)
	}

	if len(s.Corners) > 0 {
		if len(s.Corners) != 2 {
			return nil, fmt.Errorf("rectangle: corners needs 2 points, got %d", len(s.Corners))
		}
		a, b := s.Corners[0], s.Corners[1]
		return shape.RectangleFromCorners(a[0], a[1], b[0], b[1]), nil
	}

	if s.Width == nil || s.Height == nil {
		return nil, errors.New("rectangle: width and height are required")
	}
	if s.Center != nil {
		return shape.RectangleFromCenter(s.Center[0], s.Center[1], *s.Width, *s.Height), nil
	}
	var x, y float64
	if s.X != nil {
		x = *s.X
	}
	if s.Y != nil {
		y = *s.Y
	}
	return shape.NewRectangle(x, y, *s.Width, *s.Height), nil
}

func (s *Shape) circle() (*shape.Circle, error) {
	if len(s.Points) > 0 {
		if s.Center != nil || s.Radius != nil || s.Diameter != nil {
			return nil, fmt.Errorf("circle: %w (points, or center with radius or diameter)", errAmbiguous)
		}
		if len(s.Points) != 3 {
			return nil, fmt.Errorf("circle: points needs 3 points, got %d", len(s.Points))
		}
		p := s.Points
		return shape.CircleFromThreePoints(p[0][0], p[0][1], p[1][0], p[1][1], p[2][0], p[2][1])
	}

	if s.Center == nil {
		return nil, errors.New("circle: center is required")
	}
	switch {
	case s.Radius != nil && s.Diameter == nil:
		return shape.NewCircle(s.Center[0], s.Center[1], *s.Radius), nil
	case s.Diameter != nil && s.Radius == nil:
		return shape.CircleFromDiameter(s.Center[0], s.Center[1], *s.Diameter), nil
	default:
		return nil, fmt.Errorf("circle: %w (radius or diameter)", errAmbiguous)
	}
}

func parseHAlign(s string) (dxf.HAlign, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return dxf.AlignLeft, nil
	case "center":
		return dxf.AlignCenter, nil
	case "right":
		return dxf.AlignRight, nil
	}
	return 0, fmt.Errorf("unknown horizontal alignment %q", s)
}

func parseVAlign(s string) (dxf.VAlign, error) {
	switch strings.ToLower(s) {
	case "", "baseline":
		return dxf.AlignBaseline, nil
	case "bottom":
		return dxf.AlignBottom, nil
	case "middle":
		return dxf.AlignMiddle, nil
	case "top":
		return dxf.AlignTop, nil
	}
	return 0, fmt.Errorf("unknown vertical alignment %q", s)
}
