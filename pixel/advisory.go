package pixel

import "fmt"

// AdvisoryCode identifies which heuristic produced a result.
type AdvisoryCode uint8

const (
	// GuessedSquareGray means a flat length was interpreted as a square
	// single-channel image.
	GuessedSquareGray AdvisoryCode = iota + 1

	// GuessedSquareRGB means a flat length was interpreted as a square
	// 3-channel image.
	GuessedSquareRGB

	// GuessedCubeGray means a flat length was interpreted as a cubic
	// single-channel volume.
	GuessedCubeGray

	// GuessedCubeRGB means a flat length was interpreted as a cubic
	// 3-channel volume.
	GuessedCubeRGB

	// InferredChannelAxis means the third axis of a 3-axis array was
	// taken to be the channel axis because its size is 3.
	InferredChannelAxis

	// InferredDepthAxis means the third axis of a 3-axis array was taken
	// to be the depth axis.
	InferredDepthAxis

	// InferredDecodeDims means tabular decode derived axis sizes from the
	// maximum observed coordinates rather than an explicit specification.
	InferredDecodeDims

	// ScaleWithRescale means a non-default colour scale was combined with
	// global rescaling, which is likely unintended.
	ScaleWithRescale
)

func (c AdvisoryCode) String() string {
	switch c {
	case GuessedSquareGray:
		return "guessed square grayscale"
	case GuessedSquareRGB:
		return "guessed square 3-channel"
	case GuessedCubeGray:
		return "guessed cubic grayscale"
	case GuessedCubeRGB:
		return "guessed cubic 3-channel"
	case InferredChannelAxis:
		return "inferred channel axis"
	case InferredDepthAxis:
		return "inferred depth axis"
	case InferredDecodeDims:
		return "inferred decode dimensions"
	case ScaleWithRescale:
		return "colour scale combined with rescale"
	default:
		return "unknown advisory"
	}
}

// Advisory is a non-fatal notice accompanying a successful but
// heuristic-derived result.
type Advisory struct {
	Code    AdvisoryCode
	Message string
}

func (a Advisory) String() string {
	return fmt.Sprintf("%s: %s", a.Code, a.Message)
}

// Advise constructs an Advisory and logs it at debug level.
func Advise(code AdvisoryCode, format string, args ...interface{}) Advisory {
	a := Advisory{Code: code, Message: fmt.Sprintf(format, args...)}
	Debugf("advisory (%s): %s\n", a.Code, a.Message)
	return a
}

// HasAdvisory reports whether any advisory in the slice carries the
// given code.
func HasAdvisory(advisories []Advisory, code AdvisoryCode) bool {
	for _, a := range advisories {
		if a.Code == code {
			return true
		}
	}
	return false
}
