package repository

import (
	"github.com/pkg/errors"
)

// ErrUnknownMetricColumn indica uma tentativa de incremento em contador não
// reconhecido do rollup de métricas
var ErrUnknownMetricColumn = errors.New("unknown metric counter column")
