package analytics

// TopEmotion 出现次数最多的情绪
type TopEmotion struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ResolveTopEmotion 空输入返回 nil；次数相同取字典序最小的名称
func ResolveTopEmotion(names []string) *TopEmotion {
	counts := make(map[string]int64, len(names))
	for _, n := range names {
		counts[n]++
	}
	return TopFromCounts(counts)
}

// TopFromCounts 对已分组的计数做同样的决胜规则
func TopFromCounts(counts map[string]int64) *TopEmotion {
	var top *TopEmotion
	for name, c := range counts {
		if c <= 0 {
			continue
		}
		if top == nil || int(c) > top.Count || (int(c) == top.Count && name < top.Name) {
			top = &TopEmotion{Name: name, Count: int(c)}
		}
	}
	return top
}
