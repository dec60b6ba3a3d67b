// Package config loads the optional bark CLI config file.
//
// The file supplies the device key, server URL, per-notification
// defaults, and logging setup. Unknown fields are rejected so typos
// fail loudly instead of silently dropping a setting.
package config
