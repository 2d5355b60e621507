package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var productPattern = regexp.MustCompile(`(?i)(?:Amazon|AWS)\s+([\w\s.-]+?)(?:\s+now|\s+announces|\s+introduces|\s+adds|\s+launches|\s+supports|\s+is\s+now|,|\s+in\s+|\s+for\s+|$)`)

// knownProducts are tried as whole, case-sensitive words when the title
// pattern yields nothing usable.
var knownProducts = []string{
	"S3", "EC2", "RDS", "Lambda", "VPC", "CloudFormation", "CloudWatch",
	"DynamoDB", "Elastic Beanstalk", "EMR", "ECS", "EKS", "Fargate", "MWAA",
	"SageMaker", "Route 53", "App Runner", "Amplify",
}

var knownProductPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(knownProducts))
	for i, p := range knownProducts {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(p) + `\b`)
	}
	return patterns
}()

// ProductFromTitle extracts the AWS product named by an update title: the
// phrase after "Amazon"/"AWS" up to the first verb or preposition, then the
// known product list, then "N/A". Captures of two characters or fewer and
// the bare vendor names are rejected.
func ProductFromTitle(title string) string {
	if title == "" {
		return "N/A"
	}
	if m := productPattern.FindStringSubmatch(title); m != nil {
		product := strings.TrimRight(strings.TrimSpace(m[1]), ".-,")
		lower := strings.ToLower(product)
		if lower != "aws" && lower != "amazon" && utf8.RuneCountInString(product) > 2 {
			return product
		}
	}
	for i, re := range knownProductPatterns {
		if re.MatchString(title) {
			return knownProducts[i]
		}
	}
	return "N/A"
}
