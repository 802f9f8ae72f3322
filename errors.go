/*
 * errors.go, part of gowater.
 *
 *
 * Copyright 2022 Raul Mera A. (raulpuntomeraatusachpuntocl)
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
 */

package water

//CError is the concrete error type of the water package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds the dec string to the error's decoration record, unless dec
//is empty, and returns the current decoration record. Decorations mark the
//path the error took through the callers, newest last.
func (err CError) Decorate(dec string) []string {
	//Even though the receiver is not a pointer, the decoration is kept,
	//as deco is a slice, and hence a pointer itself.
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate asserts that the error implements the Error interface of this
//package and decorates it with the caller's name. Errors from other
//libraries are returned unchanged.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

//PanicMsg is the type used for the panic messages of the package, so they
//can be recovered and handled as errors.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

//Error messages and panic messages used by the package.
const (
	ErrNilData          = PanicMsg("gowater: Nil data given")
	ErrInconsistentData = PanicMsg("gowater: Inconsistent data given")
)
