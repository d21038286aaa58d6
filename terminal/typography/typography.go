// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 jmyles
//
// SPDX-License-Identifier: GPL-2.0-only

package typography

const (
	Bullet       = "•"
	HollowBullet = "◦"

	Vertical   = "│"
	Horizontal = "─"
	UpTick     = "┴"
)
