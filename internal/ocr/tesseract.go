package ocr

import "os/exec"

// ExtractText shells out to the tesseract binary. psm 6 assumes a
// single uniform block of text, which fits most menu photos better
// than the default page segmentation.
func ExtractText(filePath string) (string, error) {
	cmd := exec.Command("tesseract", filePath, "stdout", "--psm", "6")
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
