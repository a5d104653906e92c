package repository

import "errors"

var ErrFailedToAggregate = errors.New("failed to aggregate records")
