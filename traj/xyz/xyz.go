package xyz

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	water "github.com/rmera/gowater"
	v3 "github.com/rmera/gowater/v3"
	"gonum.org/v1/gonum/mat"
)

//hasSuffix is a case-insensitive strings.HasSuffix, for filename extensions.
func hasSuffix(name, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(name), suffix)
}

//compressed tells whether a filename asks for gzip or zstd (de)compression.
func compressed(name string) (gz, zst bool) {
	return hasSuffix(name, ".gz"), hasSuffix(name, ".zst") || hasSuffix(name, ".zstd")
}

//Write!

//Writer writes frames to an extended-XYZ trajectory. Files whose names end
//in ".gz", ".zst" or ".zstd" are compressed accordingly; anything else is
//written as plain text.
type Writer struct {
	f         *os.File
	b         *bufio.Writer
	z         io.WriteCloser //the compressor, when the filename asks for one
	h         io.Writer      //where the frames go: z, or b when writing plain text
	filename  string
	writeable bool
	prec      int
	frames    int          //frames written so far
	template  water.Atomer //species and ids for the bare-coordinates writes; may be nil
}

//NewWriter creates an extended-XYZ trajectory file. The compression level,
//if given, follows the scale of the format chosen by the filename (1-9 for
//gzip, 1-22 for zstd); the default is the strongest gzip level, which maps
//to a reasonably strong zstd one.
func NewWriter(name string, compressionLevel ...int) (*Writer, error) {
	W := new(Writer)
	W.filename = name
	var err error
	W.f, err = os.Create(name)
	if err != nil {
		return nil, err
	}
	W.b = bufio.NewWriter(W.f)
	level := gzip.BestCompression
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	gz, zst := compressed(name)
	switch {
	case gz:
		W.z, err = gzip.NewWriterLevel(W.b, level)
	case zst:
		W.z, err = zstd.NewWriter(W.b, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
	}
	if err != nil {
		W.f.Close()
		return nil, Error{"Can't set up the compression: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	if W.z != nil {
		W.h = W.z
	} else {
		W.h = W.b
	}
	W.prec = 6
	W.writeable = true
	return W, nil
}

//NewWriterTraj is NewWriter plus a topology: the returned Writer can also
//write bare-coordinates frames (WNext and WNextDense), taking the species
//and ids of every frame from mol.
func NewWriterTraj(name string, mol water.Atomer, compressionLevel ...int) (*Writer, error) {
	W, err := NewWriter(name, compressionLevel...)
	if err != nil {
		return nil, err
	}
	W.template = mol
	return W, nil
}

//NewWriterTo returns a Writer that sends plain (uncompressed) text to an
//arbitrary stream, such as the standard output. The name is only used to
//label errors. The stream is not closed by Close, only flushed.
func NewWriterTo(w io.Writer, name string) *Writer {
	W := new(Writer)
	W.filename = name
	W.b = bufio.NewWriter(w)
	W.h = W.b
	W.prec = 6
	W.writeable = true
	return W
}

//Returns the number of decimals written for each coordinate (6 if never
//set) and sets it, if a positive value is given.
func (W *Writer) Prec(prec ...int) int {
	ret := W.prec
	if len(prec) > 0 && prec[0] > 0 {
		W.prec = prec[0]
	}
	return ret
}

//Frames returns the number of frames written so far.
func (W *Writer) Frames() int {
	return W.frames
}

//WNextFrame writes f as the next frame of the trajectory. If the atoms of f
//carry colors, the colors are appended to each atom line and declared in the
//frame's Properties schema; the frame must then be annotated completely,
//since a file where only some atoms have the extra column would not parse.
//Everything else in the comment line is passed through verbatim.
func (W *Writer) WNextFrame(f *water.Frame) error {
	if !W.writeable {
		return Error{TrajUnIniWrite, W.filename, []string{"WNextFrame"}, true}
	}
	if f == nil || f.Coords == nil {
		return Error{NilFrame, W.filename, []string{"WNextFrame"}, true}
	}
	n := f.Len()
	if v := f.Coords.NVecs(); v != n {
		return Error{fmt.Sprintf("frame %d: %d coordinates given for %d atoms", W.frames, v, n), W.filename, []string{"WNextFrame"}, true}
	}
	colored := 0
	for i := 0; i < n; i++ {
		if f.Atom(i).Color != nil {
			colored++
		}
	}
	if colored != 0 && colored != n {
		return Error{fmt.Sprintf("frame %d: only %d of %d atoms have a color", W.frames, colored, n), W.filename, []string{"WNextFrame"}, true}
	}
	comment := f.Comment
	if colored > 0 {
		comment = addColorSchema(comment)
	}
	if _, err := fmt.Fprintf(W.h, "%d\n%s\n", n, comment); err != nil {
		return Error{err.Error(), W.filename, []string{"WNextFrame"}, true}
	}
	for i := 0; i < n; i++ {
		if err := W.writeAtomLine(f.Atom(i), f.Coords, i); err != nil {
			return errDecorate(err, "WNextFrame")
		}
	}
	W.frames++
	return nil
}

//WNext writes the next frame from bare coordinates, taking everything else
//about each atom from the template given on construction. If box is given
//with at least 9 values, they are taken as the row-major cell vectors, and
//declared in the comment line of the frame.
func (W *Writer) WNext(coord *v3.Matrix, box ...[]float64) error {
	if !W.writeable {
		return Error{TrajUnIniWrite, W.filename, []string{"WNext"}, true}
	}
	if coord == nil {
		return Error{NilCoordinates, W.filename, []string{"WNext"}, true}
	}
	if W.template == nil {
		return Error{NilTemplate, W.filename, []string{"WNext"}, true}
	}
	n := W.template.Len()
	if v := coord.NVecs(); v != n {
		return Error{fmt.Sprintf("frame %d: %d coordinates given for %d atoms", W.frames, v, n), W.filename, []string{"WNext"}, true}
	}
	comment := "Properties=species:S:1:pos:R:3:id:I:1"
	if len(box) > 0 && len(box[0]) >= 9 {
		b := box[0]
		comment = fmt.Sprintf(`Lattice="%g %g %g %g %g %g %g %g %g" `, b[0], b[1], b[2], b[3], b[4], b[5], b[6], b[7], b[8]) + comment
	}
	if _, err := fmt.Fprintf(W.h, "%d\n%s\n", n, comment); err != nil {
		return Error{err.Error(), W.filename, []string{"WNext"}, true}
	}
	for i := 0; i < n; i++ {
		if err := W.writeAtomLine(W.template.Atom(i), coord, i); err != nil {
			return errDecorate(err, "WNext")
		}
	}
	W.frames++
	return nil
}

//WNextDense writes the next frame from bare coordinates given as a gonum
//matrix, for compatibility with code that works on mat.Dense.
func (W *Writer) WNextDense(dense *mat.Dense) error {
	coord := v3.Dense2Matrix(dense)
	err := W.WNext(coord)
	if err != nil {
		err = errDecorate(err, "WNextDense")
	}
	return err
}

//writeAtomLine writes one atom line: species, coordinates and id, plus the
//color, if the atom carries one.
func (W *Writer) writeAtomLine(at *water.Atom, coord *v3.Matrix, i int) error {
	x := strconv.FormatFloat(coord.At(i, 0), 'f', W.prec, 64)
	y := strconv.FormatFloat(coord.At(i, 1), 'f', W.prec, 64)
	z := strconv.FormatFloat(coord.At(i, 2), 'f', W.prec, 64)
	var err error
	if at.Color != nil {
		c := *at.Color
		_, err = fmt.Fprintf(W.h, "%s %s %s %s %d %.3f %.3f %.3f\n", at.Symbol, x, y, z, at.ID, c[0], c[1], c[2])
	} else {
		_, err = fmt.Fprintf(W.h, "%s %s %s %s %d\n", at.Symbol, x, y, z, at.ID)
	}
	if err != nil {
		return Error{fmt.Sprintf("frame %d: %s", W.frames, err.Error()), W.filename, []string{"writeAtomLine"}, true}
	}
	return nil
}

//addColorSchema declares the appended color columns in the Properties schema
//of an extended-XYZ comment line, if the comment has a schema and doesn't
//declare them already. The rest of the comment is returned untouched, so
//re-annotating an already annotated trajectory doesn't grow its headers.
func addColorSchema(comment string) string {
	if strings.Contains(comment, "color:R:3") {
		return comment
	}
	i := strings.Index(comment, "Properties=")
	if i < 0 {
		return comment
	}
	end := strings.IndexAny(comment[i:], " \t")
	if end < 0 {
		return comment + ":color:R:3"
	}
	return comment[:i+end] + ":color:R:3" + comment[i+end:]
}

//Close flushes and closes the Writer. Nothing can be written after this.
func (W *Writer) Close() {
	if W == nil || !W.writeable {
		return
	}
	if W.z != nil {
		W.z.Close() //flushes the compressor into the buffer
	}
	W.b.Flush()
	if W.f != nil {
		W.f.Close()
	}
	W.writeable = false
}

//Read!

//Reader reads an extended-XYZ trajectory, one frame per call. It implements
//both the frame-wise interface of the annotation drivers and the
//coordinates-only Traj/ConcTraj convention of goChem.
type Reader struct {
	f        *os.File
	z        io.ReadCloser //the decompressor, when the filename asks for one
	h        *bufio.Reader
	filename string
	readable bool
	natoms   int //atoms per frame, from the first frame read; -1 before that
	frame    int //0-based index of the frame the next read will return
	line     int //1-based number of the last line read
}

//New opens the file name for reading. Files whose names end in ".gz", ".zst"
//or ".zstd" are decompressed transparently; anything else is read as plain
//text.
func New(name string) (*Reader, error) {
	R := new(Reader)
	R.filename = name
	R.natoms = -1
	var err error
	R.f, err = os.Open(name)
	if err != nil {
		return nil, err
	}
	base := bufio.NewReader(R.f)
	gz, zst := compressed(name)
	switch {
	case gz:
		var g *gzip.Reader
		g, err = gzip.NewReader(base)
		if err != nil {
			R.f.Close()
			return nil, Error{"Can't set up the decompression: " + err.Error(), name, []string{"New"}, true}
		}
		R.z = g
		R.h = bufio.NewReader(g)
	case zst:
		var d *zstd.Decoder
		d, err = zstd.NewReader(base)
		if err != nil {
			R.f.Close()
			return nil, Error{"Can't set up the decompression: " + err.Error(), name, []string{"New"}, true}
		}
		R.z = zstWrap{d}
		R.h = bufio.NewReader(R.z)
	default:
		R.h = base
	}
	R.readable = true
	return R, nil
}

//zstWrap gives the zstd Decoder the regular Closer signature.
type zstWrap struct {
	*zstd.Decoder
}

func (q zstWrap) Close() error {
	q.Decoder.Close()
	return nil
}

//NewReader reads a trajectory from an arbitrary stream of plain
//(uncompressed) extended-XYZ text, such as the standard input. The name is
//only used to label errors.
func NewReader(r io.Reader, name string) *Reader {
	R := new(Reader)
	R.filename = name
	R.natoms = -1
	R.h = bufio.NewReader(r)
	R.readable = true
	return R
}

//Readable returns true if the trajectory can still be read from.
func (R *Reader) Readable() bool {
	return R.readable
}

//Len returns the number of atoms per frame, taken from the first frame
//read, or -1 if nothing has been read yet. Note that nothing forces every
//frame of an XYZ trajectory to keep that number: only the coordinates-only
//reads (Next, NextConc) require it.
func (R *Reader) Len() int {
	return R.natoms
}

//Frame returns the 0-based index of the frame the next read will return.
func (R *Reader) Frame() int {
	return R.frame
}

//readLine returns the next line of the stream, without its terminator, and
//whether the stream ended at this line.
func (R *Reader) readLine() (string, bool, error) {
	str, err := R.h.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, Error{err.Error(), R.filename, []string{"readLine"}, true}
	}
	if str != "" {
		R.line++
	}
	return strings.TrimRight(str, "\r\n"), err == io.EOF, nil
}

//NextFrame parses and returns the next frame of the trajectory: species,
//ids, coordinates, the cell (if the comment line declares a lattice) and the
//comment line itself, verbatim. Each frame returned is freshly allocated and
//shares nothing with the Reader or with other frames. At the end of the
//trajectory, the Reader is closed and a LastFrameError is returned.
func (R *Reader) NextFrame() (*water.Frame, error) {
	if !R.readable {
		return nil, Error{TrajUnIniRead, R.filename, []string{"NextFrame"}, true}
	}
	var str string
	var eof bool
	var err error
	//the count line. Blank lines before it are tolerated, to be easy on
	//hand-assembled trajectories.
	for {
		str, eof, err = R.readLine()
		if err != nil {
			return nil, errDecorate(err, "NextFrame")
		}
		if strings.TrimSpace(str) != "" {
			break
		}
		if eof {
			R.Close() //nothing bad happened here, the trajectory just ended
			return nil, newlastFrameError(R.filename, "NextFrame")
		}
	}
	countline := R.line
	natoms, aerr := strconv.Atoi(strings.TrimSpace(str))
	if aerr != nil || natoms <= 0 {
		return nil, newMalformedHeaderError(R.filename, R.frame, countline, strings.TrimSpace(str))
	}
	if eof {
		return nil, newTruncatedFrameError(R.filename, R.frame, R.line, 0, natoms)
	}
	//the comment line
	comment, eof, err := R.readLine()
	if err != nil {
		return nil, errDecorate(err, "NextFrame")
	}
	cell, skewed := parseLattice(comment)
	if skewed {
		return nil, newSkewedCellError(R.filename, R.frame, R.line)
	}
	if eof {
		return nil, newTruncatedFrameError(R.filename, R.frame, R.line, 0, natoms)
	}
	//the atom lines
	atoms := make([]*water.Atom, natoms)
	coords := v3.Zeros(natoms)
	for i := 0; i < natoms; i++ {
		str, eof, err = R.readLine()
		if err != nil {
			return nil, errDecorate(err, "NextFrame")
		}
		if str == "" && eof {
			return nil, newTruncatedFrameError(R.filename, R.frame, R.line, i, natoms)
		}
		at, pos, reason := parseAtomLine(str)
		if reason != "" {
			return nil, newMalformedAtomLineError(R.filename, R.frame, R.line, reason)
		}
		atoms[i] = at
		coords.Set(i, 0, pos[0])
		coords.Set(i, 1, pos[1])
		coords.Set(i, 2, pos[2])
		if eof && i < natoms-1 {
			return nil, newTruncatedFrameError(R.filename, R.frame, R.line, i+1, natoms)
		}
	}
	if R.natoms < 0 {
		R.natoms = natoms
	}
	R.frame++
	return &water.Frame{Atoms: atoms, Coords: coords, Cell: cell, Comment: comment, N: natoms}, nil
}

//parseAtomLine parses "species x y z id", ignoring any extra fields, such as
//the colors of an already-annotated trajectory. It returns the reason for a
//failure as a string, or "" on success.
func parseAtomLine(str string) (*water.Atom, [3]float64, string) {
	var pos [3]float64
	fields := strings.Fields(str)
	if len(fields) < 5 {
		return nil, pos, fmt.Sprintf("%d fields, at least 5 needed", len(fields))
	}
	for k := 0; k < 3; k++ {
		f, err := strconv.ParseFloat(fields[k+1], 64)
		if err != nil {
			return nil, pos, fmt.Sprintf("coordinate %q is not a number", fields[k+1])
		}
		pos[k] = f
	}
	id, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, pos, fmt.Sprintf("atom id %q is not an integer", fields[4])
	}
	return &water.Atom{Symbol: fields[0], ID: id}, pos, ""
}

//lowerASCII lowercases the ASCII letters of s and leaves every other byte
//alone, so a byte offset into the result is valid in s itself, which
//strings.ToLower doesn't guarantee.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

//parseLattice looks for a Lattice="..." declaration in the comment line of a
//frame. The tag is matched ignoring ASCII case; the rest of the comment is
//free-form text and can hold any UTF-8. It returns the cell, or nil when the
//comment carries no usable orthorhombic lattice (absent, unparseable or
//non-positive declarations all degrade to nil, i.e. to no periodicity). The
//second return is true for the one case that doesn't degrade: a well-formed
//lattice with off-diagonal components, which callers must reject, as
//minimum-image distances on a skewed cell need math this library doesn't do.
func parseLattice(comment string) (*water.Cell, bool) {
	const tag = `lattice="`
	i := strings.Index(lowerASCII(comment), tag)
	if i < 0 {
		return nil, false
	}
	rest := comment[i+len(tag):]
	j := strings.IndexByte(rest, '"')
	if j < 0 {
		return nil, false
	}
	fields := strings.Fields(rest[:j])
	vals := make([]float64, len(fields))
	for k, v := range fields {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, false
		}
		vals[k] = f
	}
	var lx, ly, lz float64
	switch len(vals) {
	case 3:
		lx, ly, lz = vals[0], vals[1], vals[2]
	case 9:
		for _, k := range []int{1, 2, 3, 5, 6, 7} {
			if vals[k] != 0 {
				return nil, true
			}
		}
		lx, ly, lz = vals[0], vals[4], vals[8]
	default:
		return nil, false
	}
	cell, err := water.NewCell(lx, ly, lz)
	if err != nil {
		return nil, false
	}
	return cell, false
}

//Next reads the next frame and puts its coordinates in c, or discards the
//frame, after checking it for correctness, if c is nil. If box is given with
//at least 9 elements and the frame declares a cell, the row-major cell
//vectors are put in it. Next implements the fixed-topology trajectory
//convention, so it fails if the atom count changes along the trajectory;
//NextFrame has no such restriction.
func (R *Reader) Next(c *v3.Matrix, box ...[]float64) error {
	f, err := R.NextFrame()
	if err != nil {
		return err
	}
	if f.Len() != R.natoms {
		return Error{fmt.Sprintf("%d atoms in frame %d, but the trajectory started with %d", f.Len(), R.frame-1, R.natoms), R.filename, []string{"Next"}, true}
	}
	if c != nil {
		if c.NVecs() != f.Len() {
			return Error{NotEnoughSpace, R.filename, []string{"Next"}, true}
		}
		c.Copy(f.Coords.Dense)
	}
	if len(box) > 0 && len(box[0]) >= 9 {
		if f.Cell != nil {
			copy(box[0], f.Cell.Vectors())
		} else {
			for k := 0; k < 9; k++ {
				box[0][k] = 0
			}
			log.Printf("Trajectory file %s has no cell information in frame %d", R.filename, R.frame-1)
		}
	}
	return nil
}

//NextConc reads as many frames as elements the given slice has, and returns
//a slice of channels, one per frame read, through each of which the
//corresponding frame's coordinates will be sent. The frames are sent in
//reading order. A nil element discards its frame. Reading is serial; only
//whatever the caller does with the frames runs concurrently.
func (R *Reader) NextConc(frames []*v3.Matrix) ([]chan *v3.Matrix, error) {
	if !R.readable {
		return nil, Error{TrajUnIniRead, R.filename, []string{"NextConc"}, true}
	}
	framechans := make([]chan *v3.Matrix, len(frames))
	for key, val := range frames {
		if err := R.Next(val); err != nil {
			return nil, errDecorate(err, "NextConc")
		}
		framechans[key] = make(chan *v3.Matrix)
		go func(pipe chan *v3.Matrix, coords *v3.Matrix) {
			pipe <- coords
		}(framechans[key], val)
	}
	return framechans, nil
}

//Close closes the Reader and marks it unreadable. It is safe to call more
//than once, and on a Reader built from a stream, where it only drops the
//decompressor, if any.
func (R *Reader) Close() {
	if R == nil || !R.readable {
		return
	}
	if R.z != nil {
		R.z.Close()
	}
	if R.f != nil {
		R.f.Close()
	}
	R.readable = false
}
