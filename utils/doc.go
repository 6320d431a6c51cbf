// Package utils provides high-performance zero-copy conversion functions between strings and byte slices.
// WARNING: Uses unsafe operations - returned byte slices are read-only and must not be modified.
package utils
