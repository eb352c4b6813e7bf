package redis

import (
	"context"
	"fmt"
)

// ClearRunStats удаляет статистику всех запусков
func (c *Client) ClearRunStats() error {
	ctx := context.Background()

	iter := c.rdb.Scan(ctx, 0, statsKey("*"), 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan run stats: %w", err)
	}

	return nil
}
