// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"regexp"

	"github.com/MKhiriev/go-catalog-api/internal/validators"
)

var digits = regexp.MustCompile(`^[0-9]+$`)

// Route params and query values arrive as strings.
var (
	idParamsSchema = validators.Schema{
		"id": validators.String{Required: true, Pattern: digits},
	}

	paginationSchema = validators.Schema{
		"offset": validators.String{Pattern: digits},
		"limit":  validators.String{Pattern: digits},
	}
)

var (
	categorySchema = validators.Schema{
		"category_name": validators.String{Required: true, MinLength: validators.Ptr(4), MaxLength: validators.Ptr(128)},
	}

	departmentCreateSchema = validators.Schema{
		"department_name": validators.String{Required: true, MaxLength: validators.Ptr(128)},
		"department_code": validators.String{Required: true, MaxLength: validators.Ptr(16)},
	}

	departmentUpdateSchema = validators.Schema{
		"department_name": validators.String{MaxLength: validators.Ptr(128)},
		"department_code": validators.String{MaxLength: validators.Ptr(16)},
	}

	cityCreateSchema = validators.Schema{
		"city_name":     validators.String{Required: true, MaxLength: validators.Ptr(128)},
		"city_code":     validators.String{Required: true, MaxLength: validators.Ptr(16)},
		"department_id": validators.Number{Required: true, Integer: true, Positive: true},
	}

	cityUpdateSchema = validators.Schema{
		"city_name": validators.String{MaxLength: validators.Ptr(128)},
		"city_code": validators.String{MaxLength: validators.Ptr(16)},
	}

	registerSchema = validators.Schema{
		"username":        validators.String{Required: true, MinLength: validators.Ptr(4), MaxLength: validators.Ptr(64)},
		"password":        validators.String{Required: true, MinLength: validators.Ptr(8), MaxLength: validators.Ptr(128)},
		"first_name":      validators.String{MaxLength: validators.Ptr(64)},
		"first_last_name": validators.String{MaxLength: validators.Ptr(64)},
	}

	loginSchema = validators.Schema{
		"username": validators.String{Required: true},
		"password": validators.String{Required: true},
	}
)
