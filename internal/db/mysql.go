// Copyright (c) 2026 Keymaster Team
// Quadshift - quadrant shift cipher
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	_ "github.com/go-sql-driver/mysql"
)

// MySQLStore is the MySQL implementation of the Store interface.
// The DSN must include parseTime=true so created_at scans into time.Time.
type MySQLStore struct {
	bunStore
}
