package service

import "errors"

var (
	ErrPlannerClosed    = errors.New("planner is closed")
	ErrCourseNotFound   = errors.New("course not found in catalog")
	ErrCatalogNotLoaded = errors.New("course catalog is not loaded")
)
