package match

// lcsRatio is the sequence-alignment base score: twice the length of the
// longest common subsequence over the total length of both strings.
// Two empty strings are identical by convention.
func lcsRatio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	al, bl := len(ra), len(rb)

	if al == 0 && bl == 0 {
		return 1
	}
	if al == 0 || bl == 0 {
		return 0
	}

	dp := make([][]int, al+1)
	for i := 0; i <= al; i++ {
		dp[i] = make([]int, bl+1)
	}
	for i := 1; i <= al; i++ {
		for j := 1; j <= bl; j++ {
			if ra[i-1] == rb[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
				continue
			}
			dp[i][j] = max(dp[i-1][j], dp[i][j-1])
		}
	}

	return 2 * float64(dp[al][bl]) / float64(al+bl)
}
