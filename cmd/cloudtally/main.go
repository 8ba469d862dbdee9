// Cloudtally - cloud resource inventory reports.
package main

func main() {
	Execute()
}
