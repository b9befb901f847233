package operand

import "fmt"

func methodReceiverError(name string) error {
	return fmt.Errorf("no method %q resolved for receiver", name)
}

func arrowReceiverError(name string) error {
	return fmt.Errorf("arrow function %q requires an array receiver", name)
}

func forInNotIterableError(name string) error {
	return fmt.Errorf("for-in operand %q requires an array iterable", name)
}
