package locale

import "golang.org/x/text/language"

var catalogs = map[language.Tag]map[Key]string{
	language.English: {
		KeyStageReproject:  "Stage 1: Reprojection",
		KeyStageGenerate:   "Stage 2: Region generation",
		KeyReprojecting:    "Reprojecting",
		KeyGenerating:      "Generating",
		KeyComplete:        "Complete",
		KeyResuming:        "Resuming from stage",
		KeyCheckpointFound: "Checkpoint found, resuming from",
		KeyNoProjects:      "No projects available to resume",
		KeyDataDEM:         "DEM - terrain only",
		KeyDataDSM:         "DSM - terrain + buildings/trees",
		KeyAllDone:         "Mission accomplished",
	},
	language.Japanese: {
		KeyStageReproject:  "ステップ1: 投影変換",
		KeyStageGenerate:   "ステップ2: リージョン生成",
		KeyReprojecting:    "変換中",
		KeyGenerating:      "生成中",
		KeyComplete:        "完了",
		KeyResuming:        "再開: ステップ",
		KeyCheckpointFound: "チェックポイント検出、再開位置:",
		KeyNoProjects:      "再開可能なプロジェクトがありません",
		KeyDataDEM:         "DEM - 地形のみ",
		KeyDataDSM:         "DSM - 地形+建物/樹木",
		KeyAllDone:         "処理完了",
	},
	language.SimplifiedChinese: {
		KeyStageReproject:  "步骤1: 重投影",
		KeyStageGenerate:   "步骤2: 区域生成",
		KeyReprojecting:    "重投影中",
		KeyGenerating:      "生成中",
		KeyComplete:        "完成",
		KeyResuming:        "从步骤恢复",
		KeyCheckpointFound: "检测到检查点，从以下位置恢复",
		KeyNoProjects:      "没有可恢复的项目",
		KeyDataDEM:         "DEM - 仅地形",
		KeyDataDSM:         "DSM - 地形+建筑/树木",
		KeyAllDone:         "任务完成",
	},
	language.Spanish: {
		KeyStageReproject:  "Paso 1: Reproyección",
		KeyStageGenerate:   "Paso 2: Generación de regiones",
		KeyReprojecting:    "Reproyectando",
		KeyGenerating:      "Generando",
		KeyComplete:        "Completo",
		KeyResuming:        "Reanudando desde el paso",
		KeyCheckpointFound: "Punto de control encontrado, reanudar desde",
		KeyNoProjects:      "No hay proyectos disponibles para reanudar",
		KeyDataDEM:         "DEM - solo terreno",
		KeyDataDSM:         "DSM - terreno + edificios/árboles",
		KeyAllDone:         "Misión cumplida",
	},
	language.French: {
		KeyStageReproject:  "Étape 1 : Reprojection",
		KeyStageGenerate:   "Étape 2 : Génération des régions",
		KeyReprojecting:    "Reprojection",
		KeyGenerating:      "Génération",
		KeyComplete:        "Terminé",
		KeyResuming:        "Reprise de l'étape",
		KeyCheckpointFound: "Point de contrôle trouvé, reprendre depuis",
		KeyNoProjects:      "Aucun projet disponible à reprendre",
		KeyDataDEM:         "DEM - terrain uniquement",
		KeyDataDSM:         "DSM - terrain + bâtiments/arbres",
		KeyAllDone:         "Mission accomplie",
	},
	language.German: {
		KeyStageReproject:  "Schritt 1: Neuprojektion",
		KeyStageGenerate:   "Schritt 2: Regionserzeugung",
		KeyReprojecting:    "Neuprojektion",
		KeyGenerating:      "Generierung",
		KeyComplete:        "Abgeschlossen",
		KeyResuming:        "Fortsetzen ab Schritt",
		KeyCheckpointFound: "Checkpoint gefunden, fortsetzen von",
		KeyNoProjects:      "Keine Projekte zum Fortsetzen verfügbar",
		KeyDataDEM:         "DEM - nur Gelände",
		KeyDataDSM:         "DSM - Gelände + Gebäude/Bäume",
		KeyAllDone:         "Mission erfüllt",
	},
	language.Portuguese: {
		KeyStageReproject:  "Passo 1: Reprojeção",
		KeyStageGenerate:   "Passo 2: Geração de regiões",
		KeyReprojecting:    "Reprojetando",
		KeyGenerating:      "Gerando",
		KeyComplete:        "Completo",
		KeyResuming:        "Retomando da etapa",
		KeyCheckpointFound: "Checkpoint encontrado, retomar de",
		KeyNoProjects:      "Nenhum projeto disponível para retomar",
		KeyDataDEM:         "DEM - apenas terreno",
		KeyDataDSM:         "DSM - terreno + edifícios/árvores",
		KeyAllDone:         "Missão cumprida",
	},
	language.Russian: {
		KeyStageReproject:  "Шаг 1: Перепроекция",
		KeyStageGenerate:   "Шаг 2: Генерация регионов",
		KeyReprojecting:    "Перепроекция",
		KeyGenerating:      "Генерация",
		KeyComplete:        "Завершено",
		KeyResuming:        "Возобновление с шага",
		KeyCheckpointFound: "Контрольная точка найдена, возобновить с",
		KeyNoProjects:      "Нет проектов для возобновления",
		KeyDataDEM:         "DEM - только рельеф",
		KeyDataDSM:         "DSM - рельеф + здания/деревья",
		KeyAllDone:         "Миссия выполнена",
	},
	language.Italian: {
		KeyStageReproject:  "Passo 1: Riproiezione",
		KeyStageGenerate:   "Passo 2: Generazione delle regioni",
		KeyReprojecting:    "Riproiezione",
		KeyGenerating:      "Generazione",
		KeyComplete:        "Completo",
		KeyResuming:        "Ripresa dal passo",
		KeyCheckpointFound: "Checkpoint trovato, riprendi da",
		KeyNoProjects:      "Nessun progetto disponibile da riprendere",
		KeyDataDEM:         "DEM - solo terreno",
		KeyDataDSM:         "DSM - terreno + edifici/alberi",
		KeyAllDone:         "Missione compiuta",
	},
	language.Korean: {
		KeyStageReproject:  "단계 1: 재투영",
		KeyStageGenerate:   "단계 2: 리전 생성",
		KeyReprojecting:    "재투영 중",
		KeyGenerating:      "생성 중",
		KeyComplete:        "완료",
		KeyResuming:        "단계에서 재개",
		KeyCheckpointFound: "체크포인트 발견, 다음에서 재개",
		KeyNoProjects:      "재개할 수 있는 프로젝트가 없습니다",
		KeyDataDEM:         "DEM - 지형만",
		KeyDataDSM:         "DSM - 지형 + 건물/나무",
		KeyAllDone:         "임무 완수",
	},
	language.TraditionalChinese: {
		KeyStageReproject:  "步驟1: 重投影",
		KeyStageGenerate:   "步驟2: 區域生成",
		KeyReprojecting:    "重投影中",
		KeyGenerating:      "生成中",
		KeyComplete:        "完成",
		KeyResuming:        "從步驟恢復",
		KeyCheckpointFound: "檢測到檢查點，從以下位置恢復",
		KeyNoProjects:      "沒有可恢復的項目",
		KeyDataDEM:         "DEM - 僅地形",
		KeyDataDSM:         "DSM - 地形+建築/樹木",
		KeyAllDone:         "任務完成",
	},
	language.Arabic: {
		KeyStageReproject:  "الخطوة 1: إعادة الإسقاط",
		KeyStageGenerate:   "الخطوة 2: إنشاء المناطق",
		KeyReprojecting:    "إعادة الإسقاط",
		KeyGenerating:      "الإنشاء",
		KeyComplete:        "مكتمل",
		KeyResuming:        "الاستئناف من الخطوة",
		KeyCheckpointFound: "تم العثور على نقطة تفتيش، استئناف من",
		KeyNoProjects:      "لا توجد مشاريع متاحة للاستئناف",
		KeyDataDEM:         "DEM - التضاريس فقط",
		KeyDataDSM:         "DSM - التضاريس + المباني/الأشجار",
		KeyAllDone:         "المهمة أنجزت",
	},
	language.Hindi: {
		KeyStageReproject:  "चरण 1: पुनः प्रक्षेपण",
		KeyStageGenerate:   "चरण 2: क्षेत्र निर्माण",
		KeyReprojecting:    "पुनः प्रक्षेपण",
		KeyGenerating:      "जेनरेट कर रहे हैं",
		KeyComplete:        "पूर्ण",
		KeyResuming:        "चरण से फिर से शुरू",
		KeyCheckpointFound: "चेकपॉइंट मिला, यहाँ से फिर से शुरू करें",
		KeyNoProjects:      "फिर से शुरू करने के लिए कोई परियोजना उपलब्ध नहीं",
		KeyDataDEM:         "DEM - केवल भूभाग",
		KeyDataDSM:         "DSM - भूभाग + इमारतें/पेड़",
		KeyAllDone:         "मिशन पूरा",
	},
	language.Thai: {
		KeyStageReproject:  "ขั้นตอนที่ 1: การฉายใหม่",
		KeyStageGenerate:   "ขั้นตอนที่ 2: การสร้างภูมิภาค",
		KeyReprojecting:    "กำลังฉายใหม่",
		KeyGenerating:      "กำลังสร้าง",
		KeyComplete:        "เสร็จสมบูรณ์",
		KeyResuming:        "ดำเนินการต่อจากขั้นตอน",
		KeyCheckpointFound: "พบจุดตรวจสอบ ดำเนินการต่อจาก",
		KeyNoProjects:      "ไม่มีโปรเจ็กต์ที่จะดำเนินการต่อ",
		KeyDataDEM:         "DEM - ภูมิประเทศเท่านั้น",
		KeyDataDSM:         "DSM - ภูมิประเทศ + อาคาร/ต้นไม้",
		KeyAllDone:         "ภารกิจสำเร็จ",
	},
	language.Vietnamese: {
		KeyStageReproject:  "Bước 1: Tái chiếu",
		KeyStageGenerate:   "Bước 2: Tạo vùng",
		KeyReprojecting:    "Đang tái chiếu",
		KeyGenerating:      "Đang tạo",
		KeyComplete:        "Hoàn thành",
		KeyResuming:        "Tiếp tục từ bước",
		KeyCheckpointFound: "Đã tìm thấy điểm kiểm tra, tiếp tục từ",
		KeyNoProjects:      "Không có dự án nào để tiếp tục",
		KeyDataDEM:         "DEM - chỉ địa hình",
		KeyDataDSM:         "DSM - địa hình + tòa nhà/cây",
		KeyAllDone:         "Nhiệm vụ hoàn thành",
	},
}
