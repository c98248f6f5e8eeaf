// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package export

import "errors"

var (
	ErrBuildingWorkbook = errors.New("error building report workbook")
	ErrWritingWorkbook  = errors.New("error writing report workbook")
)
