// Package sqlerr defines the single error type the execution template
// surfaces to callers.
//
// Every failure raised by the driver stack (connection acquisition, statement
// preparation, parameter binding, execution, cursor iteration) is wrapped into
// an *Error before it leaves the template. The original driver error stays
// reachable through errors.Is / errors.As via Unwrap, so callers and
// transaction layers can still inspect driver specifics without the template
// enumerating them.
package sqlerr
