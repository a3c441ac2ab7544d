package session

import "fmt"

func key(id string) string {
	return fmt.Sprintf("console:form:%s", id)
}
