package service

import "github.com/guttosm/packing-service/internal/domain/model"

// BagPlanner picks which of a trip's bags to bring for a given number of items.
type BagPlanner struct{}

// NewBagPlanner creates a BagPlanner.
func NewBagPlanner() *BagPlanner {
	return &BagPlanner{}
}

// Plan selects the subset of bags whose free capacity covers items with the
// least spare room, preferring fewer bags on ties. When nothing covers items
// every bag is returned and Fits is false.
func (p *BagPlanner) Plan(trip model.Trip, items int) model.BagPlan {
	plan := model.BagPlan{TripID: trip.ID, ItemCount: items, Bags: []model.Bag{}}

	total := 0
	for _, bag := range trip.Bags {
		total += bag.FreeCapacity()
	}

	if items <= 0 {
		plan.Fits = true
		return plan
	}
	if items > total {
		plan.Bags = append(plan.Bags, trip.Bags...)
		plan.FreeCapacity = total
		return plan
	}

	chosen := chooseBags(trip.Bags, items, total)
	for _, i := range chosen {
		plan.Bags = append(plan.Bags, trip.Bags[i])
		plan.FreeCapacity += trip.Bags[i].FreeCapacity()
	}
	plan.Fits = true
	return plan
}

// chooseBags runs a 0/1 subset-sum over free capacities. dp[i][s] is the
// fewest bags among the first i reaching exactly s free slots, -1 if unreachable.
func chooseBags(bags []model.Bag, target, total int) []int {
	n := len(bags)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, total+1)
		for s := range dp[i] {
			dp[i][s] = -1
		}
	}
	dp[0][0] = 0

	for i := 1; i <= n; i++ {
		free := bags[i-1].FreeCapacity()
		for s := 0; s <= total; s++ {
			dp[i][s] = dp[i-1][s]
			if free == 0 || s < free || dp[i-1][s-free] == -1 {
				continue
			}
			if with := dp[i-1][s-free] + 1; dp[i][s] == -1 || with < dp[i][s] {
				dp[i][s] = with
			}
		}
	}

	best := -1
	for s := target; s <= total; s++ {
		if dp[n][s] != -1 {
			best = s
			break
		}
	}
	if best == -1 {
		return nil
	}

	// Backtrack: bag i-1 was used when skipping it cannot reproduce dp[i][s].
	chosen := make([]int, 0, n)
	for i, s := n, best; i > 0; i-- {
		if dp[i][s] == dp[i-1][s] {
			continue
		}
		chosen = append(chosen, i-1)
		s -= bags[i-1].FreeCapacity()
	}
	for l, r := 0, len(chosen)-1; l < r; l, r = l+1, r-1 {
		chosen[l], chosen[r] = chosen[r], chosen[l]
	}
	return chosen
}
