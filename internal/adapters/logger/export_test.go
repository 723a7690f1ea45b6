// export_test.go exports private functions for white-box testing.
package logger

// FormatErrorChainExported exports the private chain formatter for testing.
var FormatErrorChainExported = formatErrorChain
