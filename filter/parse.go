// parse.go converts the UI's string identifiers into a Spec.

package filter

import (
	"strings"
)

const (
	NameIdentity   = "none"
	NameGaussian   = "gaussian"
	NameBox        = "box"
	NameSharpen    = "sharpen"
	NameEdgeDetect = "edge"
	NameGrayscale  = "grayscale"

	// NameLegacyBlur is the fixed-parameter blur of the first releases:
	// a 15×15 Gaussian with sigma derived from the size.
	NameLegacyBlur = "blur"
)

// Names lists the canonical identifiers accepted by Parse.
func Names() []string {
	return []string{
		NameIdentity,
		NameGaussian,
		NameBox,
		NameSharpen,
		NameEdgeDetect,
		NameGrayscale,
	}
}

// Parse returns the Spec for the given identifier; kernelSize and sigma
// are used only by the Gaussian filter.
//
// Unknown identifiers are not an error: they select Identity.
func Parse(name string, kernelSize int, sigma float64) Spec {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_") {
	case NameGaussian:
		return Gaussian{KernelSize: kernelSize, Sigma: sigma}
	case NameLegacyBlur:
		return Gaussian{KernelSize: DefaultKernelSize}
	case NameBox, "box_blur":
		return Box{}
	case NameSharpen:
		return Sharpen{}
	case NameEdgeDetect, "edge_detect", "sobel":
		return EdgeDetect{}
	case NameGrayscale, "grey", "gray":
		return Grayscale{}
	default:
		return Identity{}
	}
}

// Name returns the identifier Parse maps to the filter of spec.
func Name(spec Spec) string {
	switch spec.(type) {
	case Gaussian:
		return NameGaussian
	case nil:
		return NameIdentity
	default:
		return spec.String()
	}
}
