// Package platform provides cross-platform filesystem helpers. Permission
// changes are skipped on Windows and on filesystems that do not support them.
package platform
