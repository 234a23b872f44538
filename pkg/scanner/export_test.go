package scanner

// CalculateConfigHash exposes calculateConfigHash to external tests.
var CalculateConfigHash = calculateConfigHash
