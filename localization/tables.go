package localization

import (
	"github.com/cskyle2026/Diabetes/models"
)

var tables = map[models.LanguageCode]map[string]string{
	models.LangPortuguese: {
		"analyzing":                 "Analisando sua comida...",
		"error_title":               "Análise falhou",
		"error_message":             "Não foi possível analisar a imagem. Tente tirar outra foto.",
		"error_min_age":             "Você precisa ter pelo menos 18 anos.",
		"error_password_mismatch":   "As senhas não coincidem.",
		"error_password_complexity": "A senha precisa de pelo menos 4 letras e 4 números.",
		"alert_GREEN":               "Alimento adequado",
		"alert_YELLOW":              "Consuma com moderação",
		"alert_RED":                 "Alimento não recomendado",
		"substitutesTitle":          "Substitutos saudáveis",
		"saveAnalysisButton":        "Salvar análise",
		"newPhotoButton":            "Nova foto",
		"welcome_subject":           "Bem-vindo ao GlucoCheck Photo",
		"welcome_body":              "Olá %s, sua conta foi criada. Fotografe sua comida e acompanhe sua saúde!",
	},
	models.LangEnglish: {
		"analyzing":                 "Analyzing your food...",
		"error_title":               "Analysis failed",
		"error_message":             "We couldn't analyze the image. Please try taking another photo.",
		"error_min_age":             "You must be at least 18 years old.",
		"error_password_mismatch":   "Passwords do not match.",
		"error_password_complexity": "Password needs at least 4 letters and 4 digits.",
		"alert_GREEN":               "Suitable food",
		"alert_YELLOW":              "Consume in moderation",
		"alert_RED":                 "Food not recommended",
		"substitutesTitle":          "Healthy substitutes",
		"saveAnalysisButton":        "Save analysis",
		"newPhotoButton":            "New photo",
		"welcome_subject":           "Welcome to GlucoCheck Photo",
		"welcome_body":              "Hi %s, your account is ready. Photograph your food and track your health!",
	},
	models.LangMandarin: {
		"analyzing":                 "正在分析您的食物...",
		"error_title":               "分析失败",
		"error_message":             "无法分析图片，请重新拍照。",
		"error_min_age":             "您必须年满18岁。",
		"error_password_mismatch":   "两次输入的密码不一致。",
		"error_password_complexity": "密码至少需要4个字母和4个数字。",
		"alert_GREEN":               "适宜食物",
		"alert_YELLOW":              "适量食用",
		"alert_RED":                 "不建议食用",
		"substitutesTitle":          "健康替代品",
		"saveAnalysisButton":        "保存分析",
		"newPhotoButton":            "重新拍照",
		"welcome_subject":           "欢迎使用 GlucoCheck Photo",
		"welcome_body":              "%s您好，您的账户已创建。拍摄食物，守护健康！",
	},
	models.LangHindi: {
		"analyzing":                 "आपके भोजन का विश्लेषण हो रहा है...",
		"error_title":               "विश्लेषण विफल",
		"error_message":             "छवि का विश्लेषण नहीं हो सका। कृपया दूसरी फोटो लें।",
		"error_min_age":             "आपकी आयु कम से कम 18 वर्ष होनी चाहिए।",
		"error_password_mismatch":   "पासवर्ड मेल नहीं खाते।",
		"error_password_complexity": "पासवर्ड में कम से कम 4 अक्षर और 4 अंक होने चाहिए।",
		"alert_GREEN":               "उपयुक्त भोजन",
		"alert_YELLOW":              "संयम से खाएं",
		"alert_RED":                 "भोजन अनुशंसित नहीं",
		"substitutesTitle":          "स्वस्थ विकल्प",
		"saveAnalysisButton":        "विश्लेषण सहेजें",
		"newPhotoButton":            "नई फोटो",
		"welcome_subject":           "GlucoCheck Photo में आपका स्वागत है",
		"welcome_body":              "नमस्ते %s, आपका खाता बन गया है। भोजन की फोटो लें और स्वास्थ्य पर नज़र रखें!",
	},
	models.LangSpanish: {
		"analyzing":                 "Analizando tu comida...",
		"error_title":               "Análisis fallido",
		"error_message":             "No pudimos analizar la imagen. Intenta tomar otra foto.",
		"error_min_age":             "Debes tener al menos 18 años.",
		"error_password_mismatch":   "Las contraseñas no coinciden.",
		"error_password_complexity": "La contraseña necesita al menos 4 letras y 4 números.",
		"alert_GREEN":               "Alimento adecuado",
		"alert_YELLOW":              "Consumir con moderación",
		"alert_RED":                 "Alimento no recomendado",
		"substitutesTitle":          "Sustitutos saludables",
		"saveAnalysisButton":        "Guardar análisis",
		"newPhotoButton":            "Nueva foto",
		"welcome_subject":           "Bienvenido a GlucoCheck Photo",
		"welcome_body":              "Hola %s, tu cuenta está lista. ¡Fotografía tu comida y cuida tu salud!",
	},
	models.LangFrench: {
		"analyzing":                 "Analyse de votre plat...",
		"error_title":               "Échec de l'analyse",
		"error_message":             "Impossible d'analyser l'image. Essayez de reprendre une photo.",
		"error_min_age":             "Vous devez avoir au moins 18 ans.",
		"error_password_mismatch":   "Les mots de passe ne correspondent pas.",
		"error_password_complexity": "Le mot de passe doit contenir au moins 4 lettres et 4 chiffres.",
		"alert_GREEN":               "Aliment adapté",
		"alert_YELLOW":              "À consommer avec modération",
		"alert_RED":                 "Aliment déconseillé",
		"substitutesTitle":          "Substituts sains",
		"saveAnalysisButton":        "Enregistrer l'analyse",
		"newPhotoButton":            "Nouvelle photo",
		"welcome_subject":           "Bienvenue sur GlucoCheck Photo",
		"welcome_body":              "Bonjour %s, votre compte est prêt. Photographiez vos plats et suivez votre santé !",
	},
	models.LangArabic: {
		"analyzing":                 "جارٍ تحليل طعامك...",
		"error_title":               "فشل التحليل",
		"error_message":             "تعذر تحليل الصورة. حاول التقاط صورة أخرى.",
		"error_min_age":             "يجب أن يكون عمرك 18 عامًا على الأقل.",
		"error_password_mismatch":   "كلمتا المرور غير متطابقتين.",
		"error_password_complexity": "تحتاج كلمة المرور إلى 4 أحرف و4 أرقام على الأقل.",
		"alert_GREEN":               "طعام مناسب",
		"alert_YELLOW":              "تناوله باعتدال",
		"alert_RED":                 "طعام غير موصى به",
		"substitutesTitle":          "بدائل صحية",
		"saveAnalysisButton":        "حفظ التحليل",
		"newPhotoButton":            "صورة جديدة",
		"welcome_subject":           "مرحبًا بك في GlucoCheck Photo",
		"welcome_body":              "مرحبًا %s، تم إنشاء حسابك. صوّر طعامك وتابع صحتك!",
	},
	models.LangBengali: {
		"analyzing":                 "আপনার খাবার বিশ্লেষণ করা হচ্ছে...",
		"error_title":               "বিশ্লেষণ ব্যর্থ",
		"error_message":             "ছবিটি বিশ্লেষণ করা যায়নি। আরেকটি ছবি তুলুন।",
		"error_min_age":             "আপনার বয়স কমপক্ষে ১৮ বছর হতে হবে।",
		"error_password_mismatch":   "পাসওয়ার্ড মেলেনি।",
		"error_password_complexity": "পাসওয়ার্ডে কমপক্ষে ৪টি অক্ষর ও ৪টি সংখ্যা লাগবে।",
		"alert_GREEN":               "উপযুক্ত খাবার",
		"alert_YELLOW":              "পরিমিত পরিমাণে খান",
		"alert_RED":                 "খাবারটি সুপারিশকৃত নয়",
		"substitutesTitle":          "স্বাস্থ্যকর বিকল্প",
		"saveAnalysisButton":        "বিশ্লেষণ সংরক্ষণ করুন",
		"newPhotoButton":            "নতুন ছবি",
		"welcome_subject":           "GlucoCheck Photo-এ স্বাগতম",
		"welcome_body":              "হ্যালো %s, আপনার অ্যাকাউন্ট তৈরি হয়েছে। খাবারের ছবি তুলুন, স্বাস্থ্যের খেয়াল রাখুন!",
	},
	models.LangRussian: {
		"analyzing":                 "Анализируем вашу еду...",
		"error_title":               "Анализ не удался",
		"error_message":             "Не удалось проанализировать изображение. Попробуйте сделать другое фото.",
		"error_min_age":             "Вам должно быть не менее 18 лет.",
		"error_password_mismatch":   "Пароли не совпадают.",
		"error_password_complexity": "Пароль должен содержать минимум 4 буквы и 4 цифры.",
		"alert_GREEN":               "Подходящая еда",
		"alert_YELLOW":              "Употребляйте умеренно",
		"alert_RED":                 "Еда не рекомендуется",
		"substitutesTitle":          "Полезные замены",
		"saveAnalysisButton":        "Сохранить анализ",
		"newPhotoButton":            "Новое фото",
		"welcome_subject":           "Добро пожаловать в GlucoCheck Photo",
		"welcome_body":              "Здравствуйте, %s! Ваш аккаунт создан. Фотографируйте еду и следите за здоровьем!",
	},
	models.LangJapanese: {
		"analyzing":                 "食事を分析しています...",
		"error_title":               "分析に失敗しました",
		"error_message":             "画像を分析できませんでした。もう一度撮影してください。",
		"error_min_age":             "18歳以上である必要があります。",
		"error_password_mismatch":   "パスワードが一致しません。",
		"error_password_complexity": "パスワードには英字4文字以上と数字4文字以上が必要です。",
		"alert_GREEN":               "適した食品",
		"alert_YELLOW":              "適量を心がけて",
		"alert_RED":                 "推奨されない食品",
		"substitutesTitle":          "健康的な代替品",
		"saveAnalysisButton":        "分析を保存",
		"newPhotoButton":            "新しい写真",
		"welcome_subject":           "GlucoCheck Photoへようこそ",
		"welcome_body":              "%sさん、アカウントが作成されました。食事を撮影して健康を管理しましょう！",
	},
}
