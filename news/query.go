package news

import "sort"

// Query functions are pure views over a snapshot of the collection. None of
// them mutate their input; sorted results are built on a copy.

// Featured returns articles flagged as featured, in collection order, capped
// to the first n.
func Featured(articles []*Article, n int) []*Article {
	result := make([]*Article, 0, n)
	for _, a := range articles {
		if !a.Featured {
			continue
		}
		result = append(result, a)
		if len(result) == n {
			break
		}
	}
	return result
}

// AllSorted returns the full collection sorted descending by date. Articles
// with equal dates keep their relative collection order.
func AllSorted(articles []*Article) []*Article {
	result := make([]*Article, len(articles))
	copy(result, articles)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})
	return result
}

// ByCategory returns the articles in category c, sorted descending by date.
func ByCategory(articles []*Article, c string) []*Article {
	result := make([]*Article, 0)
	for _, a := range articles {
		if a.Category == c {
			result = append(result, a)
		}
	}
	return AllSorted(result)
}

// Recent returns the n most recent articles.
func Recent(articles []*Article, n int) []*Article {
	result := AllSorted(articles)
	if len(result) > n {
		result = result[:n]
	}
	return result
}
