// Copyright (c) 2026, Pidkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Pidkit inspects P&ID symbol SVG files: it extracts connection
// points and computes routed edge geometry, printing results as JSON.
package main

import "github.com/pidkit/pidkit/cmd/pidkit/cmd"

func main() {
	cmd.Execute()
}
