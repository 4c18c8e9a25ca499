package logutils

import (
	"strconv"
	"strings"
)

// ShortCallerFormatter trims the caller path down to the bare file name.
func ShortCallerFormatter(_ uintptr, file string, line int) string {
	short := file
	if i := strings.LastIndexByte(file, '/'); i != -1 {
		short = file[i+1:]
	}
	return short + ":" + strconv.Itoa(line)
}
