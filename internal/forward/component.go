package forward

import "fmt"

// Component identifies a derivative of the gravitational potential:
// the vertical gravity component gz or one of the six second-derivative
// tensor components.
type Component uint8

const (
	Gz Component = iota
	Gxx
	Gxy
	Gxz
	Gyy
	Gyz
	Gzz

	numComponents
)

var componentNames = [numComponents]string{
	Gz:  "gz",
	Gxx: "gxx",
	Gxy: "gxy",
	Gxz: "gxz",
	Gyy: "gyy",
	Gyz: "gyz",
	Gzz: "gzz",
}

func (c Component) String() string {
	if c < numComponents {
		return componentNames[c]
	}
	return fmt.Sprintf("Component(%d)", uint8(c))
}

// ParseComponent converts the lowercase name used in configuration
// files and the CLI into a Component.
func ParseComponent(s string) (Component, error) {
	for c, name := range componentNames {
		if s == name {
			return Component(c), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownComponent, s)
}
