package parser

import "fmt"

var (
	errAttributeWithoutValue = fmt.Errorf("attribute without value")
	errArrowWithoutBody       = fmt.Errorf("arrow function call without a body")
	errForBlockShape          = fmt.Errorf("malformed for(...) block")
)
