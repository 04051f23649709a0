// Copyright (C) 2020 Markus L. Noga
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package internal

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Singleton log writer. Writes to stdout, and optionally also to a file.
// Does not add prefixes, or force newlines.

var logOut    io.Writer = os.Stdout
var logFile   *bufio.Writer
var logFileOS *os.File

// Enables logging to the given file in addition to stdout. Closes a previously opened log file
func LogAlsoToFile(fileName string) error {
	if err:=LogClose(); err!=nil { return err }
	f, err := os.OpenFile(fileName, os.O_CREATE | os.O_TRUNC | os.O_WRONLY, 0666)
	if err!=nil { return err }
	logFileOS=f
	logFile  =bufio.NewWriter(f)
	logOut   =io.MultiWriter(os.Stdout, logFile)
	return nil
}

// Flushes and closes the log file, if any. Logging continues on stdout
func LogClose() error {
	if logFile==nil { return nil }
	err:=logFile.Flush()
	if cerr:=logFileOS.Close(); err==nil { err=cerr }
	logFile, logFileOS, logOut = nil, nil, os.Stdout
	return err
}

func LogPrint(args ...interface{}) (n int, err error) {
	return fmt.Fprint(logOut, args...)
}

func LogPrintln(args ...interface{}) (n int, err error) {
	return fmt.Fprintln(logOut, args...)
}

func LogPrintf(format string, args ...interface{}) (n int, err error) {
	return fmt.Fprintf(logOut, format, args...)
}

func LogFatal(args ...interface{}) {
	fmt.Fprintln(logOut, args...)
	LogClose()
	os.Exit(1)
}

func LogFatalf(format string, args ...interface{}) {
	fmt.Fprintf(logOut, format, args...)
	LogClose()
	os.Exit(1)
}

func LogSync() {
	if logFile==nil { return }
	logFile.Flush()
	logFileOS.Sync()
}
