package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRateFileNotFound indicates that the exchange rate source file does not exist.
var ErrRateFileNotFound = errors.New("exchange rate file not found")

// ErrUnsupportedCurrency indicates a currency code outside the supported set.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ErrTableNotFound indicates that the scraped document has no matching table.
var ErrTableNotFound = errors.New("no matching table found")

// ErrEmptyDataset indicates an attempt to persist a dataset without rows.
var ErrEmptyDataset = errors.New("dataset is empty")

// ErrDegraded marks a stage that completed with partial results.
// The pipeline keeps running when it sees this error.
var ErrDegraded = errors.New("stage degraded")
