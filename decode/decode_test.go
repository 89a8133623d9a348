package decode_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sevenseg/decode"
	"github.com/katalvlaran/sevenseg/deduce"
	"github.com/katalvlaran/sevenseg/segment"
)

//----------------------------------------------------------------------------//
// ParseRecord / ReadRecords
//----------------------------------------------------------------------------//

// TestParseRecord_RoundTrip parses the worked example and renders it back.
func TestParseRecord_RoundTrip(t *testing.T) {
	r := mustRecord(t, workedLine)
	require.Equal(t, "ab", r.Signals[9].String())
	require.Equal(t, "bcdef", r.Outputs[0].String())
	require.Equal(t, r.Outputs[0], r.Outputs[2], "outputs may repeat")

	again := mustRecord(t, r.String())
	require.Equal(t, r, again)
}

// TestParseRecord_Errors checks every rejection wraps ErrMalformedRecord.
func TestParseRecord_Errors(t *testing.T) {
	cases := []struct {
		name  string
		line  string
		cause error
	}{
		{"NoSeparator", "acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab", nil},
		{"NineSignals", "acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb | ab ab ab ab", nil},
		{"ThreeOutputs", "acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab | ab ab ab", nil},
		{"BadSymbol", "acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ax | ab ab ab ab", segment.ErrInvalidSymbol},
		{"RepeatedSymbol", "acedgfb cdfbe gcdfa fbcad dab cefabd cdfgeb eafb cagedb ab | ab ab ab aa", segment.ErrDuplicateSymbol},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decode.ParseRecord(tc.line)
			require.ErrorIs(t, err, decode.ErrMalformedRecord)
			if tc.cause != nil {
				require.ErrorIs(t, err, tc.cause)
			}
		})
	}
}

// TestReadRecords_LineNumbers verifies blank lines are skipped and errors
// name the offending line.
func TestReadRecords_LineNumbers(t *testing.T) {
	recs := sampleRecords(t)
	require.Len(t, recs, 10)

	_, err := decode.ReadRecords(strings.NewReader(workedLine + "\n\nbroken\n"))
	require.ErrorIs(t, err, decode.ErrMalformedRecord)
	require.Contains(t, err.Error(), "line 3")
}

//----------------------------------------------------------------------------//
// Decode
//----------------------------------------------------------------------------//

// TestDecode_Scenarios covers the worked example outputs.
func TestDecode_Scenarios(t *testing.T) {
	cases := []struct {
		name   string
		line   string
		digits [4]int
		value  int
	}{
		{"FiveThreeFiveThree", workedLine, [4]int{5, 3, 5, 3}, 5353},
		{"SignalsAsOutputs", knownLine, [4]int{1, 9, 6, 4}, 1964},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := mustRecord(t, tc.line)
			digits, err := decode.DecodeDigits(r)
			require.NoError(t, err)
			require.Equal(t, tc.digits, digits)

			v, err := decode.Decode(r)
			require.NoError(t, err)
			require.Equal(t, tc.value, v)
		})
	}
}

// TestDecode_Sample checks each line of the sample input.
func TestDecode_Sample(t *testing.T) {
	for i, r := range sampleRecords(t) {
		v, err := decode.Decode(r)
		require.NoError(t, err, "record %d", i)
		require.Equal(t, sampleValues[i], v, "record %d", i)
		require.GreaterOrEqual(t, v, 0)
		require.LessOrEqual(t, v, 9999)
	}
}

// TestDecode_ErrorKinds verifies the two failure kinds stay distinct.
func TestDecode_ErrorKinds(t *testing.T) {
	_, err := decode.Decode(mustRecord(t, noOneLine))
	var de *deduce.DeductionError
	require.True(t, errors.As(err, &de))
	require.Equal(t, deduce.PhaseClassify, de.Phase)
	require.NotErrorIs(t, err, segment.ErrUnknownPattern)

	_, err = decode.Decode(mustRecord(t, notADigitLine))
	var upe *segment.UnknownPatternError
	require.True(t, errors.As(err, &upe))
	require.Equal(t, "acd", upe.Pattern.String())
	require.NotErrorIs(t, err, deduce.ErrDeduction)

	_, err = decode.Decode(mustRecord(t, badFourLine))
	require.True(t, errors.As(err, &de))
	require.Equal(t, deduce.PhaseVerify, de.Phase)
	require.NotErrorIs(t, err, segment.ErrUnknownPattern)
}

//----------------------------------------------------------------------------//
// CountUnique
//----------------------------------------------------------------------------//

// TestCountUnique tallies by length only, even for undecodable records.
func TestCountUnique(t *testing.T) {
	require.Equal(t, 0, decode.CountUnique(mustRecord(t, workedLine)))
	require.Equal(t, 2, decode.CountUnique(mustRecord(t, knownLine)))
	require.Equal(t, 4, decode.CountUnique(mustRecord(t, notADigitLine)))

	recs := sampleRecords(t)
	for _, r := range recs {
		n := decode.CountUnique(r)
		require.GreaterOrEqual(t, n, 0)
		require.LessOrEqual(t, n, 4)
	}
	require.Equal(t, 26, decode.CountUniqueAll(recs))
}
