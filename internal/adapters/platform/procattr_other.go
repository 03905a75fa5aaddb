// SPDX-FileCopyrightText: 2025 The Canaveral Authors
// SPDX-License-Identifier: EUPL-1.2

//go:build !unix

package platform

import "os/exec"

func detach(*exec.Cmd) {}
