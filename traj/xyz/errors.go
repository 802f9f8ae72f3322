package xyz

import (
	"fmt"

	water "github.com/rmera/gowater"
)

//Errors

//errDecorate asserts that the error implements water.Error and decorates it
//with the caller's name. Errors from other libraries are returned unchanged.
func errDecorate(err error, caller string) error {
	err2, ok := err.(water.Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

//Error is the general error type of the package. It fulfills water.Error
//and water.TrajError.
type Error struct {
	message  string
	filename string //the file that has problems, or "" if none
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("xyz file %s error: %s", err.filename, err.message)
}

//Decorate adds the dec string to the decoration record of the error, unless
//dec is empty, and returns the current decoration record.
func (err Error) Decorate(dec string) []string {
	//Even though the receiver is not a pointer, the decoration is kept,
	//as deco is a slice, and hence a pointer itself.
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//FileName returns the name of the file with which the error happened.
func (err Error) FileName() string { return err.filename }

//Format returns the format of the trajectory ("xyz").
func (err Error) Format() string { return "xyz" }

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

//Error messages used by the package.
const (
	TrajUnIniRead  = "Traj object uninitialized to read"
	TrajUnIniWrite = "Traj object uninitialized to write"
	NilCoordinates = "Given nil coordinates"
	NilFrame       = "Given nil frame"
	NilTemplate    = "Writer has no topology to write bare coordinates with"
	NotEnoughSpace = "Not enough space in passed blocks"
	EOF            = "EOF"
)

//parseError locates a failure in the input: the 0-based index of the frame
//being read and the 1-based number of the offending line. It is embedded by
//the concrete parse failures of the package, which thus all fulfill
//water.ParseError.
type parseError struct {
	message  string
	filename string
	deco     []string
	frame    int
	line     int
}

func (err parseError) Error() string {
	return fmt.Sprintf("xyz file %s error: %s", err.filename, err.message)
}

//Decorate adds the dec string to the decoration record of the error, unless
//dec is empty, and returns the current decoration record.
func (err parseError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//FileName returns the name of the file with which the error happened.
func (err parseError) FileName() string { return err.filename }

//Format returns the format of the trajectory ("xyz").
func (err parseError) Format() string { return "xyz" }

//Critical returns true: a parse failure always ends the run.
func (err parseError) Critical() bool { return true }

//Frame returns the 0-based index of the frame that was being read when the
//error was found.
func (err parseError) Frame() int { return err.frame }

//Line returns the 1-based number of the line of the input that caused the
//error.
func (err parseError) Line() int { return err.line }

func newParseError(message, filename string, frame, line int) parseError {
	return parseError{message: message, filename: filename, frame: frame, line: line}
}

//MalformedHeaderError means that a line that should declare the atom count
//of a frame could not be read as a positive integer.
type MalformedHeaderError struct{ parseError }

func newMalformedHeaderError(filename string, frame, line int, got string) MalformedHeaderError {
	m := fmt.Sprintf("frame %d: count line %d: %q is not a positive whole number of atoms", frame, line, got)
	return MalformedHeaderError{newParseError(m, filename, frame, line)}
}

//MalformedAtomLineError means that an atom line has fewer than the 5
//mandatory fields, or coordinates or an id that don't parse.
type MalformedAtomLineError struct{ parseError }

func newMalformedAtomLineError(filename string, frame, line int, reason string) MalformedAtomLineError {
	m := fmt.Sprintf("frame %d: atom line %d: %s", frame, line, reason)
	return MalformedAtomLineError{newParseError(m, filename, frame, line)}
}

//TruncatedFrameError means that the input ended in the middle of a frame.
type TruncatedFrameError struct{ parseError }

func newTruncatedFrameError(filename string, frame, line, got, want int) TruncatedFrameError {
	m := fmt.Sprintf("frame %d: input over at line %d, after %d of %d atom lines", frame, line, got, want)
	return TruncatedFrameError{newParseError(m, filename, frame, line)}
}

//SkewedCellError means that a frame declares a well-formed lattice with
//non-zero off-diagonal components. Only orthorhombic cells can be used, so
//the frame is rejected instead of analyzed with wrong distances.
type SkewedCellError struct{ parseError }

func newSkewedCellError(filename string, frame, line int) SkewedCellError {
	m := fmt.Sprintf("frame %d: header line %d: the lattice is not orthorhombic", frame, line)
	return SkewedCellError{newParseError(m, filename, frame, line)}
}

//lastFrameError fulfills water.LastFrameError. It signals that the
//trajectory ended normally, which callers are expected to filter out and
//not treat as a failure.
type lastFrameError struct {
	deco     []string
	fileName string
}

//Error returns "EOF", as the error is just a normal end of file.
func (E lastFrameError) Error() string { return EOF }

//Decorate adds the dec string to the decoration record of the error, unless
//dec is empty, and returns the current decoration record.
func (E lastFrameError) Decorate(dec string) []string {
	if dec != "" {
		E.deco = append(E.deco, dec)
	}
	return E.deco
}

//FileName returns the name of the file with which the error happened.
func (E lastFrameError) FileName() string { return E.fileName }

//Format returns the format of the trajectory ("xyz").
func (E lastFrameError) Format() string { return "xyz" }

//Critical returns false, as a trajectory ending is not a failure.
func (E lastFrameError) Critical() bool { return false }

//NormalLastFrameTermination does nothing. It only marks the error as the
//normal end of a trajectory.
func (E lastFrameError) NormalLastFrameTermination() {}

func newlastFrameError(filename string, caller string) lastFrameError {
	e := lastFrameError{fileName: filename}
	e.deco = []string{caller}
	return e
}
