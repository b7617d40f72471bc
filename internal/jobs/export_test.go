package jobs

import "context"

func (j *StockAlertJob) Check(ctx context.Context) { j.check(ctx) }
