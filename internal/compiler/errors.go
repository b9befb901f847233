package compiler

import "fmt"

var (
	errIfShape     = fmt.Errorf("if requires at least [condition, then]")
	errElifShape   = fmt.Errorf("elif requires [condition, body]")
	errElseShape   = fmt.Errorf("else requires [body]")
	errWhileShape  = fmt.Errorf("while requires [condition, body]")
	errForShape    = fmt.Errorf("for requires [init, condition, step, body]")
	errForInShape  = fmt.Errorf("for-in requires [variable, iterable, body]")
	errForInVar    = fmt.Errorf("for-in variable must be a plain identifier")
	errSwitchShape = fmt.Errorf("switch requires [value, options(case..., default?)]")
)
