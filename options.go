package water

import "runtime"

//Options contains the options for a trajectory annotation run. Do not build
//it directly: get a default set with DefaultOptions and adjust it with the
//methods, which validate the values given to them.
type Options struct {
	cutoff  float64
	cpus    int
	colors  *ColorTable
	prec    int
	keep    bool
	onframe func(int, Tally)
}

//DefaultOptions returns an Options set to the default values: the default
//O-H bond cutoff and color table, 6 decimals per coordinate on output, as
//many CPUs as the machine has, no per-frame records kept and no per-frame
//hook.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.cutoff = DefaultCutoff
	ret.cpus = runtime.NumCPU()
	ret.colors = DefaultColors()
	ret.prec = 6
	return ret
}

//Returns the current O-H bond cutoff, in A, and sets it, if a positive
//value is given.
func (r *Options) Cutoff(cutoff ...float64) float64 {
	ret := r.cutoff
	if len(cutoff) > 0 && cutoff[0] > 0 {
		r.cutoff = cutoff[0]
	}
	return ret
}

//Returns the number of goroutines used by the concurrent annotation driver
//and sets it, if a positive value is given.
func (r *Options) Cpus(cpus ...int) int {
	ret := r.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		r.cpus = cpus[0]
	}
	return ret
}

//Returns the color table used to annotate the atoms and sets it, if a
//non-nil table is given.
func (r *Options) Colors(colors ...*ColorTable) *ColorTable {
	ret := r.colors
	if len(colors) > 0 && colors[0] != nil {
		r.colors = colors[0]
	}
	return ret
}

//Returns the number of decimals to be written for each coordinate, and sets
//it, if a positive value is given. The value is only a request: it is up to
//whatever writes the annotated frames to honor it.
func (r *Options) Prec(prec ...int) int {
	ret := r.prec
	if len(prec) > 0 && prec[0] > 0 {
		r.prec = prec[0]
	}
	return ret
}

//Returns whether the annotation drivers keep the per-frame population
//tallies in the statistics they return, and sets it, if a value is given.
//The per-frame record grows with the trajectory, so it is off by default.
func (r *Options) Keep(keep ...bool) bool {
	ret := r.keep
	if len(keep) > 0 {
		r.keep = keep[0]
	}
	return ret
}

//Returns the hook called after each frame is annotated and written, and
//sets it, if one is given. The hook gets the 0-based frame index and the
//frame's population tally, in writing order. Useful for progress reports.
func (r *Options) OnFrame(onframe ...func(int, Tally)) func(int, Tally) {
	ret := r.onframe
	if len(onframe) > 0 {
		r.onframe = onframe[0]
	}
	return ret
}
