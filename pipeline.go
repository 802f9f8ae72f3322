/*
 * pipeline.go, part of gowater.
 *
 *
 * Copyright 2023 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * gowater is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package water

import (
	"fmt"
	"log"
)

//Stats accumulates the results of an annotation run.
type Stats struct {
	Frames   int     //frames fully annotated and written
	Total    Tally   //populations accumulated over all those frames
	PerFrame []Tally //per-frame populations, filled only when the Keep option is set
}

//AnnotateTraj runs the full analysis over a trajectory: it reads each frame
//from in, assigns a protonation state to its oxygens, colors every atom, and
//writes the annotated frame to out, until in runs out of frames. Frames are
//read, processed and written strictly one at a time and in order, so the
//memory needed doesn't depend on the length of the trajectory. If a frame
//can't be read, processed or written, the run stops and the error is
//returned along with the statistics of the frames already written, which
//remain valid in the output.
func AnnotateTraj(in FrameTraj, out FrameWriter, options ...*Options) (*Stats, error) {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	stats := new(Stats)
	if o.keep {
		stats.PerFrame = make([]Tally, 0, 100)
	}
reading:
	for i := 0; ; i++ {
		frame, err := in.NextFrame()
		if err != nil {
			switch err := err.(type) {
			case LastFrameError:
				break reading //nothing bad happened here, the trajectory just ended
			case Error:
				err.Decorate(fmt.Sprintf("AnnotateTraj: Failed while reading the %d th frame", i))
				return stats, err
			default:
				return stats, err
			}
		}
		warnNoCell(frame, i)
		t, err := annotateFrame(frame, o)
		if err != nil {
			return stats, errDecorate(err, fmt.Sprintf("AnnotateTraj: Failed while processing the %d th frame", i))
		}
		if err := out.WNextFrame(frame); err != nil {
			return stats, errDecorate(err, fmt.Sprintf("AnnotateTraj: Failed while writing the %d th frame", i))
		}
		record(stats, *t, i, o)
	}
	return stats, nil
}

//AnnotateTrajConc is the concurrent version of AnnotateTraj. It reads up to
//as many frames as the Cpus option says, classifies and colors each in its
//own goroutine, and writes the finished frames in reading order before
//reading the next batch. Only the geometric analysis runs concurrently:
//reading and writing stay serial, so the frames leave in exactly the order
//they came in, and the output is byte-identical to the sequential one. The
//cutoff, cell and color table are shared read-only among the goroutines,
//and each goroutine works on a frame nothing else sees.
func AnnotateTrajConc(in FrameTraj, out FrameWriter, options ...*Options) (*Stats, error) {
	o := DefaultOptions()
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	}
	stats := new(Stats)
	if o.keep {
		stats.PerFrame = make([]Tally, 0, 100)
	}
	cpus := o.cpus
	if cpus < 1 {
		cpus = 1 //a caller-built zero-value Options has cpus 0
	}
	results := make([]chan concResult, cpus)
	for k := range results {
		//buffered, so the workers of a batch abandoned on error can still
		//send and exit
		results[k] = make(chan concResult, 1)
	}
	frames := make([]*Frame, 0, cpus)
	var pending error //a read failure, surfaced once the frames before it are written
	for i, last := 0, false; !last; i += len(frames) {
		frames = frames[:0]
		for k := 0; k < cpus; k++ {
			frame, err := in.NextFrame()
			if err != nil {
				switch err := err.(type) {
				case LastFrameError:
					//the trajectory just ended
				case Error:
					err.Decorate(fmt.Sprintf("AnnotateTrajConc: Failed while reading the %d th frame", i+k))
					pending = err
				default:
					pending = err
				}
				last = true
				break
			}
			warnNoCell(frame, i+k)
			frames = append(frames, frame)
		}
		for k, frame := range frames {
			go unitAnnotate(frame, o, results[k])
		}
		for k, frame := range frames {
			res := <-results[k]
			if res.err != nil {
				return stats, errDecorate(res.err, fmt.Sprintf("AnnotateTrajConc: Failed while processing the %d th frame", i+k))
			}
			if err := out.WNextFrame(frame); err != nil {
				return stats, errDecorate(err, fmt.Sprintf("AnnotateTrajConc: Failed while writing the %d th frame", i+k))
			}
			record(stats, *res.tally, i+k, o)
		}
	}
	return stats, pending
}

//carries the analysis of one frame back from its goroutine.
type concResult struct {
	tally *Tally
	err   error
}

//unitAnnotate is the worker of the concurrent driver. It classifies and
//colors one frame and reports to the driver through the channel.
func unitAnnotate(frame *Frame, o *Options, result chan concResult) {
	t, err := annotateFrame(frame, o)
	result <- concResult{tally: t, err: err}
}

//annotateFrame classifies and colors one frame, in place.
func annotateFrame(frame *Frame, o *Options) (*Tally, error) {
	t, err := AssignStates(frame.Coords, frame, frame.Cell, o.cutoff)
	if err != nil {
		return nil, err
	}
	Paint(frame, o.colors)
	return t, nil
}

//warnNoCell tells the user that a frame will be processed without
//periodicity. Distances over the cell boundary are missed in such a frame,
//so hydrogens can appear less bonded than they are.
func warnNoCell(frame *Frame, i int) {
	if frame.Cell == nil {
		log.Printf("No cell dimensions found in frame %d, not using PBC", i)
	}
}

//record tallies one finished frame into the run's statistics and fires the
//per-frame hook, if there is one.
func record(stats *Stats, t Tally, i int, o *Options) {
	stats.Frames++
	stats.Total.Add(&t)
	if o.keep {
		stats.PerFrame = append(stats.PerFrame, t)
	}
	if o.onframe != nil {
		o.onframe(i, t)
	}
}
