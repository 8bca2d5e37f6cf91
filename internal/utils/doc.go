// Package utils provides shared utility functions.
//
// These utilities are used across multiple packages and include:
//   - Branch name validation
//   - Issue marker extraction from branch names
//   - Terminal detection
package utils
