/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/annolab/annotator-api/cmd"

// @title           Image Annotator API
// @version         1.0.0
// @description     API for annotating images with labeled bounding boxes and exporting YOLO or Pascal VOC training labels
// @contact.name    API Support
// @contact.url     https://github.com/annolab/annotator-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
