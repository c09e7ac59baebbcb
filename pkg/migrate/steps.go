package migrate

// Version history:
//
//	v1  original flat schema: folders with categories, no explicit ordering
//	v2  explicit order fields on folders and categories
//	v3  render folders (isRenderFolder, renderKeywords, skipOrganization)
//	    and tracked render comp ids
//	v4  user settings record
//	v5  global exceptions list, sequence detection flags, label colors

// stepAddOrdering (v1 -> v2) assigns positional order fields to folders and
// categories that predate explicit ordering. Positions reflect the stored
// array order, which is what v1 builds used for display.
func stepAddOrdering(doc map[string]interface{}) {
	for i, folder := range documentFolders(doc) {
		if _, ok := folder["order"]; !ok {
			folder["order"] = i
		}
		for j, cat := range folderCategories(folder) {
			if _, ok := cat["order"]; !ok {
				cat["order"] = j
			}
		}
	}
}

// stepAddRenderSupport (v2 -> v3) introduces render folders. Existing
// folders are not render folders; the render comp id list starts empty.
func stepAddRenderSupport(doc map[string]interface{}) {
	for _, folder := range documentFolders(doc) {
		if _, ok := folder["isRenderFolder"]; !ok {
			folder["isRenderFolder"] = false
		}
	}
	if _, ok := doc["renderCompIds"]; !ok {
		doc["renderCompIds"] = []interface{}{}
	}
}

// stepAddSettings (v3 -> v4) introduces the user settings record with every
// toggle off and language on auto.
func stepAddSettings(doc map[string]interface{}) {
	if _, ok := doc["settings"]; ok {
		return
	}
	doc["settings"] = map[string]interface{}{
		"deleteEmptyFolders": false,
		"showStats":          false,
		"isolateMissing":     false,
		"isolateUnused":      false,
		"applyLabelColor":    false,
		"language":           "",
	}
}

// stepAddExceptionsAndSequences (v4 -> v5) introduces the global exceptions
// list, per-category sequence detection and subcategory label colors.
// Pre-v5 builds always treated image sequences as footage, so Footage and
// Images categories default to detectSequences true to preserve behavior;
// label colors default to off.
func stepAddExceptionsAndSequences(doc map[string]interface{}) {
	if _, ok := doc["exceptions"]; !ok {
		doc["exceptions"] = []interface{}{}
	}
	for _, folder := range documentFolders(doc) {
		for _, cat := range folderCategories(folder) {
			catType, _ := cat["type"].(string)
			if catType == "Footage" || catType == "Images" {
				if _, ok := cat["detectSequences"]; !ok {
					cat["detectSequences"] = true
				}
			}
			subsRaw, _ := cat["subcategories"].([]interface{})
			for _, s := range subsRaw {
				sub, ok := s.(map[string]interface{})
				if !ok {
					continue
				}
				if _, ok := sub["enableLabelColor"]; !ok {
					sub["enableLabelColor"] = false
				}
			}
		}
	}
}
