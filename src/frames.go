package tactile

/*------------------------------------------------------------------
 *
 * Purpose:   	Wire format for tactile frames arriving over a byte
 *		stream (stdin, serial port, TCP).
 *
 * Description:	A frame is one signed 16 bit little endian sample per
 *		channel, Q15: -32768 .. +32767 maps to -1.0 .. just
 *		under +1.0.  No header; the channel count is agreed in
 *		configuration.
 *
 *---------------------------------------------------------------*/

import (
	"encoding/binary"
	"math"
)

const FrameSampleBytes = 2

// FrameBytes is the size on the wire of one frame.
func FrameBytes(channels int) int {
	return channels * FrameSampleBytes
}

func Q15ToFloat(v int16) float32 {
	return float32(v) / 32768
}

// FloatToQ15 converts with rounding; out of range values are clipped.
func FloatToQ15(x float32) (int16, bool) {
	var v = math.Round(float64(x) * 32768)

	if v > math.MaxInt16 {
		return math.MaxInt16, true
	}
	if v < math.MinInt16 {
		return math.MinInt16, true
	}

	return int16(v), false
}

// DecodeFrames converts as many whole samples as fit in both buffers and
// returns how many were converted.
func DecodeFrames(dst []float32, src []byte) int {
	var n = min(len(dst), len(src)/FrameSampleBytes)

	for i := range n {
		dst[i] = Q15ToFloat(int16(binary.LittleEndian.Uint16(src[i*FrameSampleBytes:]))) //nolint:gosec
	}

	return n
}

// EncodeFrames is the inverse of DecodeFrames.  Returns the number of
// samples that had to be clipped.
func EncodeFrames(dst []byte, src []float32) int {
	var n = min(len(src), len(dst)/FrameSampleBytes)
	var clipped = 0

	for i := range n {
		var v, c = FloatToQ15(src[i])
		if c {
			clipped++
		}
		binary.LittleEndian.PutUint16(dst[i*FrameSampleBytes:], uint16(v)) //nolint:gosec
	}

	return clipped
}
