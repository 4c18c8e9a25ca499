package status

import (
	"fmt"
)

// Method records how a probe obtained its verdict. A full status query
// yields gameplay details, while a bare connection check only proves
// that the server is accepting connections.
type Method int

const (
	MethodNone Method = iota
	MethodQuery
	MethodLegacy
	MethodConnect
)

func (method Method) String() string {
	switch method {
	case MethodQuery:
		return "query"
	case MethodLegacy:
		return "legacy"
	case MethodConnect:
		return "connect"
	case MethodNone:
		return "none"
	default:
		return fmt.Sprintf("%d", method)
	}
}
